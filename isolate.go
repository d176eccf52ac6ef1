// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// #cgo CXXFLAGS: -std=c++17 -I${SRCDIR}
// #cgo LDFLAGS: -lv8 -lv8_libplatform
// #include <stdlib.h>
// #include "corejs.h"
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"unsafe"
)

var initOnce sync.Once

// Init performs process-wide V8 initialization. It is safe to call more
// than once; only the first call has an effect. NewIsolate calls it for
// callers who forget to, matching isolate.go's NewIsolate in the
// teacher, which self-initializes the platform on first use.
func Init() {
	initOnce.Do(func() {
		C.V8Init()
	})
}

// Isolate is a single V8 isolate: an independent JavaScript heap with its
// own global object, module registry and message bridge. An Isolate must
// not be used from more than one goroutine at a time without holding the
// lock obtained from Lock (see spec.md section 5, Concurrency Model).
type Isolate struct {
	ptr    C.IsolatePtr
	handle cgo.Handle

	cfg Config

	mu     sync.Mutex
	locked bool

	mods map[ModuleID]*moduleEntry // Go-side registry mirror, see module.go

	rejections map[int]struct{} // PendingRejections bookkeeping, see link.go

	userData interface{} // current User-Data Scope value, see scope.go
}

// HeapStatistics reports engine-maintained heap counters, mirroring
// v8::HeapStatistics and the teacher's GetHeapStatistics.
type HeapStatistics struct {
	TotalHeapSize            uint64
	TotalHeapSizeExecutable  uint64
	TotalPhysicalSize        uint64
	TotalAvailableSize       uint64
	UsedHeapSize             uint64
	HeapSizeLimit            uint64
	MallocedMemory           uint64
	ExternalMemory           uint64
	PeakMallocedMemory       uint64
	NumberOfNativeContexts   uint64
	NumberOfDetachedContexts uint64
}

// NewIsolate creates an isolate with a zero Config: no snapshot, no
// shared buffer, and no callbacks installed (Deno.core.send throws,
// since no Config.Receive is set).
func NewIsolate() *Isolate {
	iso, err := NewIsolateWithConfig(Config{})
	if err != nil {
		// A zero Config cannot fail snapshot restoration; any error here
		// is a fatal embedder bug.
		panic(err)
	}
	return iso
}

// NewIsolateWithConfig creates an isolate per cfg. When cfg.WillSnapshot
// is set, the isolate is created with a SnapshotCreator and only
// Snapshot may be called to retire it — see snapshot.go.
func NewIsolateWithConfig(cfg Config) (*Isolate, error) {
	Init()

	iso := &Isolate{
		cfg:        cfg,
		mods:       make(map[ModuleID]*moduleEntry),
		rejections: make(map[int]struct{}),
	}
	iso.handle = cgo.NewHandle(iso)

	var cCfg C.IsolateConfig
	cCfg.will_snapshot = boolToInt(cfg.WillSnapshot)
	if len(cfg.LoadSnapshot) > 0 {
		cCfg.load_snapshot.data = (*C.uint8_t)(unsafe.Pointer(&cfg.LoadSnapshot[0]))
		cCfg.load_snapshot.len = C.size_t(len(cfg.LoadSnapshot))
	}
	if len(cfg.Shared) > 0 {
		cCfg.shared.data = (*C.uint8_t)(unsafe.Pointer(&cfg.Shared[0]))
		cCfg.shared.len = C.size_t(len(cfg.Shared))
	}

	if cfg.WillSnapshot {
		iso.ptr = C.NewSnapshotterIsolate(cCfg, C.uintptr_t(iso.handle))
	} else {
		iso.ptr = C.NewIsolate(cCfg, C.uintptr_t(iso.handle))
	}
	return iso, nil
}

func boolToInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// Dispose releases the isolate and every resource registered against it.
// It is the caller's responsibility to ensure no other goroutine is
// inside Lock on this isolate.
func (iso *Isolate) Dispose() {
	C.IsolateDispose(iso.ptr)
	iso.handle.Delete()
}

// Lock pins the calling goroutine to its OS thread and acquires V8's
// isolate lock, exactly as v8::Locker requires. Unlock must be called
// from the same goroutine before it returns control to the scheduler.
// Calling Lock twice without an intervening Unlock is a programming
// error and panics, mirroring the teacher's v8Lock double-lock guard.
func (iso *Isolate) Lock() {
	iso.mu.Lock()
	if iso.locked {
		iso.mu.Unlock()
		panic("core: Isolate already locked")
	}
	iso.locked = true
	iso.mu.Unlock()

	runtime.LockOSThread()
	C.IsolateLock(iso.ptr)
}

// Unlock releases the isolate lock taken by Lock.
func (iso *Isolate) Unlock() {
	iso.mu.Lock()
	if !iso.locked {
		iso.mu.Unlock()
		panic("core: Isolate not locked")
	}
	iso.locked = false
	iso.mu.Unlock()

	C.IsolateUnlock(iso.ptr)
	runtime.UnlockOSThread()
}

// TerminateExecution schedules termination of any JavaScript currently
// executing in this isolate. It is the one Isolate method documented as
// safe to call from a goroutine other than the one holding the lock
// (spec.md section 5).
func (iso *Isolate) TerminateExecution() {
	C.IsolateTerminateExecution(iso.ptr)
}

// IsExecutionTerminating reports whether a termination request is still
// in flight for this isolate.
func (iso *Isolate) IsExecutionTerminating() bool {
	return C.IsolateIsExecutionTerminating(iso.ptr) != 0
}

// ThrowException schedules a JS exception with the given message to be
// thrown as soon as control returns to JavaScript. It has no effect
// outside a call originating from JS (a native callback or Execute).
func (iso *Isolate) ThrowException(message string) {
	cMsg := C.CString(message)
	defer C.free(unsafe.Pointer(cMsg))
	C.IsolateThrowException(iso.ptr, cMsg)
}

// RunMicrotasks drains the isolate's default microtask queue. Execute
// and ModEvaluate already call this internally; it is exposed for hosts
// that pump microtasks between sends on a long-lived isolate. userData
// is scoped for the duration of the call per spec.md section 4.2.
func (iso *Isolate) RunMicrotasks(userData interface{}) {
	scope := newUserDataScope(iso, userData)
	defer scope.close()
	C.IsolateRunMicrotasks(iso.ptr)
}

// GetHeapStatistics reports the engine's current heap counters.
func (iso *Isolate) GetHeapStatistics() HeapStatistics {
	hs := C.IsolateGetHeapStatistics(iso.ptr)
	return HeapStatistics{
		TotalHeapSize:            uint64(hs.total_heap_size),
		TotalHeapSizeExecutable:  uint64(hs.total_heap_size_executable),
		TotalPhysicalSize:        uint64(hs.total_physical_size),
		TotalAvailableSize:       uint64(hs.total_available_size),
		UsedHeapSize:             uint64(hs.used_heap_size),
		HeapSizeLimit:            uint64(hs.heap_size_limit),
		MallocedMemory:           uint64(hs.malloced_memory),
		ExternalMemory:           uint64(hs.external_memory),
		PeakMallocedMemory:       uint64(hs.peak_malloced_memory),
		NumberOfNativeContexts:   uint64(hs.number_of_native_contexts),
		NumberOfDetachedContexts: uint64(hs.number_of_detached_contexts),
	}
}

// Execute compiles and runs source as a classic (non-module) script,
// returning an *ExceptionError if it raised or failed to compile.
// userData is scoped for the duration of the call per spec.md section
// 4.2, and is what host callbacks reentering through Deno.core.send will
// observe via Isolate.UserData.
func (iso *Isolate) Execute(userData interface{}, filename, source string) error {
	scope := newUserDataScope(iso, userData)
	defer scope.close()

	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))
	cSource := C.CString(source)
	defer C.free(unsafe.Pointer(cSource))

	result := C.Execute(iso.ptr, cFilename, cSource)
	if result.exception_json != nil {
		defer C.FreeCString(result.exception_json)
		return newExceptionError(C.GoString(result.exception_json))
	}
	return nil
}
