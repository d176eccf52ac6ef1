// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// #include "corejs.h"
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// Respond delivers a response for opID. When called from within the
// ReceiveCallback that is currently handling opID, the response is
// attached synchronously as send()'s return value; called any other
// time, it is delivered asynchronously through Deno.core.recv, matching
// deno_respond's two modes in libdeno.rs. userData is scoped for the
// duration of the call per spec.md section 4.2; a ReceiveCallback
// responding synchronously should pass iso.UserData() to keep the
// nested scope idempotent.
func (iso *Isolate) Respond(userData interface{}, opID uint32, buf []byte) {
	scope := newUserDataScope(iso, userData)
	defer scope.close()

	var cBuf C.ByteView
	hasBuf := C.int(0)
	if len(buf) > 0 {
		cBuf.data = (*C.uint8_t)(unsafe.Pointer(&buf[0]))
		cBuf.len = C.size_t(len(buf))
		hasBuf = 1
	}
	C.CoreRespond(iso.ptr, C.uint32_t(opID), cBuf, hasBuf)
}

// LastException returns the exception captured by the most recent
// uncaught throw or failed CoreRespond call, if any, and clears it.
func (iso *Isolate) LastException() *ExceptionError {
	cErr := C.CoreLastException(iso.ptr)
	if cErr == nil {
		return nil
	}
	defer C.FreeCString(cErr)
	C.CoreClearLastException(iso.ptr)
	return newExceptionError(C.GoString(cErr))
}

func byteViewToSlice(v C.ByteView) []byte {
	if v.data == nil || v.len == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(v.data), C.int(v.len))
}

//export goRecvCB
func goRecvCB(self C.uintptr_t, opID C.uint32_t, control C.ByteView,
	hasZeroCopy C.int, zeroCopy C.ByteView, zeroCopyToken C.uint64_t) {
	iso := cgo.Handle(self).Value().(*Isolate)

	controlBytes := byteViewToSlice(control)
	var zeroCopyBytes []byte
	if hasZeroCopy != 0 && zeroCopy.data != nil && zeroCopy.len > 0 {
		// Aliases the pinned V8 backing store without copying; the pin is
		// released below once Receive returns.
		zeroCopyBytes = unsafe.Slice((*byte)(unsafe.Pointer(zeroCopy.data)), int(zeroCopy.len))
	}

	if iso.cfg.Receive == nil {
		iso.ThrowException("core: no ReceiveCallback configured")
		return
	}

	resp := iso.cfg.Receive(iso.UserData(), uint32(opID), controlBytes, zeroCopyBytes)

	if zeroCopyToken != 0 {
		C.ReleasePinnedBuffer(iso.ptr, zeroCopyToken)
	}

	if resp != nil {
		iso.Respond(iso.UserData(), uint32(opID), resp)
	}
}
