// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core_test

import (
	"testing"

	core "github.com/nimbusjs/corejs"
)

func TestIsolateSnapshot(t *testing.T) {
	t.Parallel()

	snapshotter, err := core.NewIsolateWithConfig(core.Config{WillSnapshot: true})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig(WillSnapshot) = %v, want nil", err)
	}
	defer snapshotter.Dispose()

	if err := snapshotter.Execute(nil, "snapshot.js", "globalThis.fromSnapshot = 41 + 1"); err != nil {
		t.Fatalf("Execute() before snapshotting = %v, want nil", err)
	}

	blob := snapshotter.Snapshot()
	if len(blob) == 0 {
		t.Fatal("Snapshot() returned an empty blob")
	}
}

func TestIsolateSnapshotReplay(t *testing.T) {
	t.Parallel()

	snapshotter, err := core.NewIsolateWithConfig(core.Config{WillSnapshot: true})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig(WillSnapshot) = %v, want nil", err)
	}
	if err := snapshotter.Execute(nil, "snapshot.js", "globalThis.fromSnapshot = 41 + 1"); err != nil {
		snapshotter.Dispose()
		t.Fatalf("Execute() before snapshotting = %v, want nil", err)
	}
	blob := snapshotter.Snapshot()
	snapshotter.Dispose()
	if len(blob) == 0 {
		t.Fatal("Snapshot() returned an empty blob")
	}

	replayed, err := core.NewIsolateWithConfig(core.Config{LoadSnapshot: blob})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig(LoadSnapshot) = %v, want nil", err)
	}
	defer replayed.Dispose()

	if err := replayed.Execute(nil, "check.js", `
		if (globalThis.fromSnapshot !== 42) {
			throw new Error("fromSnapshot = " + globalThis.fromSnapshot + ", want 42");
		}
	`); err != nil {
		t.Fatalf("Execute() against replayed snapshot = %v, want nil", err)
	}
}

func TestIsolateSnapshotPanicsWithoutWillSnapshot(t *testing.T) {
	t.Parallel()

	iso := core.NewIsolate()
	defer iso.Dispose()

	defer func() {
		if recover() == nil {
			t.Fatal("Snapshot() on a non-snapshotter isolate did not panic")
		}
	}()
	iso.Snapshot()
}
