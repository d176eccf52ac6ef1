// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// BorrowedBuffer is a view into memory owned by the caller of whatever
// function returned it. It must not be retained past the call that
// produced it — copy it first if the host needs it to outlive the call.
// It is the Go-side analogue of deno_buf in libdeno.rs.
type BorrowedBuffer []byte

// PinnedBuffer is a zero-copy view backed by a V8 ArrayBuffer whose
// backing store has been pinned against garbage collection for the
// duration of a single ReceiveCallback invocation. The pin is released
// automatically by the bridge immediately after the callback returns; a
// host that needs the bytes afterward must copy them.
//
// This mirrors PinnedBuf in libdeno.rs, which is dropped at the end of
// the native stack frame that owns it; corejs reproduces that lifetime
// with an explicit release call instead of a destructor, since Go has no
// scope-exit hook to tie it to.
type PinnedBuffer []byte
