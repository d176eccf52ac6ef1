// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// #include <stdlib.h>
// #include "corejs.h"
import "C"

import "unsafe"

// Snapshot asks a snapshotter isolate (one created with
// Config.WillSnapshot) to produce a startup blob capturing its current
// heap and global object. It may only be called once per isolate; after
// it returns, the isolate is marked snapshotted and Dispose tears it
// down normally instead of leaking it.
//
// Calling Snapshot on an isolate not created with Config.WillSnapshot is
// a programming error and panics, matching libdeno.rs's assumption that
// deno_snapshot_new is only ever reached through the snapshotter path.
func (iso *Isolate) Snapshot() []byte {
	if !iso.cfg.WillSnapshot {
		panic("core: Snapshot called on a non-snapshotter isolate")
	}
	blob := C.SnapshotCreate(iso.ptr)
	defer C.FreeStartupData(blob)
	if blob.data == nil || blob.len == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(blob.data), C.int(blob.len))
}
