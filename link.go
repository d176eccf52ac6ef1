// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// #include <stdlib.h>
// #include "corejs.h"
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// ModInstantiate links module id against the rest of the registry using
// the isolate's configured ResolveCallback, invoked for each import
// specifier the engine requests, in the order the engine chooses; each
// request is matched against the module's recorded specifiers by string
// equality (spec.md's "resolver order" property).
// userData is scoped for the duration of instantiation per spec.md
// section 4.2.
func (iso *Isolate) ModInstantiate(userData interface{}, id ModuleID) error {
	scope := newUserDataScope(iso, userData)
	defer scope.close()

	result := C.ModuleInstantiate(iso.ptr, C.ModuleID(id))
	if result.exception_json != nil {
		defer C.FreeCString(result.exception_json)
		return newExceptionError(C.GoString(result.exception_json))
	}
	return nil
}

// ModEvaluate runs a previously instantiated module's top-level body.
// errored reports whether evaluation left the module in the Errored
// status; when true, err is the captured exception. userData is scoped
// for the duration of evaluation per spec.md section 4.2.
func (iso *Isolate) ModEvaluate(userData interface{}, id ModuleID) (errored bool, err error) {
	scope := newUserDataScope(iso, userData)
	defer scope.close()

	result := C.ModuleEvaluate(iso.ptr, C.ModuleID(id))
	if result.errored != 0 {
		defer C.FreeCString(result.exception_json)
		return true, newExceptionError(C.GoString(result.exception_json))
	}
	return false, nil
}

//export goResolveCB
func goResolveCB(self C.uintptr_t, specifier *C.char, referrer C.ModuleID) C.ModuleID {
	iso := cgo.Handle(self).Value().(*Isolate)
	if iso.cfg.Resolve == nil {
		return 0
	}
	id := iso.cfg.Resolve(iso.UserData(), C.GoString(specifier), ModuleID(referrer))
	return C.ModuleID(id)
}

//export goDynImportCB
func goDynImportCB(self C.uintptr_t, specifier *C.char, referrer *C.char, dynImportID C.int32_t) {
	iso := cgo.Handle(self).Value().(*Isolate)
	if iso.cfg.DynImport == nil {
		return
	}
	iso.cfg.DynImport(int32(dynImportID), C.GoString(specifier), C.GoString(referrer))
}

// DynImportDone completes a dynamic import previously announced through
// DynImportCallback: moduleID resolves the import() promise with that
// module's namespace object on success, err rejects it with a TypeError
// carrying err's message, matching deno_dyn_import_done's contract in
// libdeno.rs. Exactly one of moduleID or err is meaningful. Completing an
// unknown or already-completed dynImportID is a no-op, since the Resolver
// DynImportCallback stashed (binding.cc's rt->dyn_imports) may already have
// been consumed.
func (iso *Isolate) DynImportDone(dynImportID int32, moduleID ModuleID, err error) {
	var cErr *C.char
	if err != nil {
		cErr = C.CString(err.Error())
		defer C.free(unsafe.Pointer(cErr))
	}
	C.DynImportDone(iso.ptr, C.int32_t(dynImportID), C.ModuleID(moduleID), cErr)
}

//export goPromiseRejectCB
func goPromiseRejectCB(self C.uintptr_t, promiseIdentityHash C.int32_t, event C.int) {
	iso := cgo.Handle(self).Value().(*Isolate)
	iso.mu.Lock()
	defer iso.mu.Unlock()
	switch event {
	case 0: // kPromiseRejectWithNoHandler
		iso.rejections[int(promiseIdentityHash)] = struct{}{}
	case 1: // kPromiseHandlerAddedAfterReject
		delete(iso.rejections, int(promiseIdentityHash))
	}
}

// PendingRejections returns the identity hashes of promises that were
// rejected while they had no handler and have not since had a handler
// attached. The order of the returned hashes is not defined.
func (iso *Isolate) PendingRejections() []int {
	iso.mu.Lock()
	defer iso.mu.Unlock()
	out := make([]int, 0, len(iso.rejections))
	for id := range iso.rejections {
		out = append(out, id)
	}
	return out
}
