// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// #include <stdlib.h>
// #include "corejs.h"
import "C"

import "unsafe"

// ModuleID identifies a compiled ES module within one isolate's
// registry. IDs are assigned by the engine (V8's module identity hash)
// and are stable for the lifetime of the isolate, per spec.md's Module
// Registry invariant that an ID, once issued, always resolves to the
// same module.
type ModuleID int32

// moduleEntry is the Go-side mirror of the native ModuleInfo, kept so
// hosts can inspect a module's name and import specifiers without
// crossing into C for read-only bookkeeping.
type moduleEntry struct {
	main       bool
	name       string
	specifiers []string
}

// ModNew compiles source as an ES module and registers it, returning the
// ModuleID the rest of the Module Registry and Linker operations key on.
func (iso *Isolate) ModNew(isMain bool, name, source string) (ModuleID, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cSource := C.CString(source)
	defer C.free(unsafe.Pointer(cSource))

	result := C.ModuleNew(iso.ptr, boolToInt(isMain), cName, cSource)
	if result.exception_json != nil {
		defer C.FreeCString(result.exception_json)
		return 0, newExceptionError(C.GoString(result.exception_json))
	}

	id := ModuleID(result.id)
	n := int(C.ModuleImportsLen(iso.ptr, C.ModuleID(id)))
	specifiers := make([]string, n)
	for i := 0; i < n; i++ {
		cSpec := C.ModuleImportsGet(iso.ptr, C.ModuleID(id), C.int32_t(i))
		specifiers[i] = C.GoString(cSpec)
		C.FreeCString(cSpec)
	}

	iso.mu.Lock()
	iso.mods[id] = &moduleEntry{main: isMain, name: name, specifiers: specifiers}
	iso.mu.Unlock()

	return id, nil
}

// ModImportsLen returns the number of import specifiers module id
// requested at compile time.
func (iso *Isolate) ModImportsLen(id ModuleID) int {
	iso.mu.Lock()
	defer iso.mu.Unlock()
	entry, ok := iso.mods[id]
	if !ok {
		return 0
	}
	return len(entry.specifiers)
}

// ModImportsGet returns the index'th import specifier requested by
// module id, in source order. ResolveCallback requests are matched
// against these strings, not against their position.
func (iso *Isolate) ModImportsGet(id ModuleID, index int) (string, bool) {
	iso.mu.Lock()
	defer iso.mu.Unlock()
	entry, ok := iso.mods[id]
	if !ok || index < 0 || index >= len(entry.specifiers) {
		return "", false
	}
	return entry.specifiers[index], true
}

// ModInfo reports whether id is the graph's main module and the name it
// was registered under.
func (iso *Isolate) ModInfo(id ModuleID) (isMain bool, name string, ok bool) {
	iso.mu.Lock()
	defer iso.mu.Unlock()
	entry, found := iso.mods[id]
	if !found {
		return false, "", false
	}
	return entry.main, entry.name, true
}
