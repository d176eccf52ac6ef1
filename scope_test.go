// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import "testing"

// newTestIsolate builds an Isolate value without touching cgo, enough to
// exercise the pure-Go scope bookkeeping in isolation from the engine.
func newTestIsolate() *Isolate {
	return &Isolate{}
}

func TestUserDataScopeNestedSameValueIsIdempotent(t *testing.T) {
	t.Parallel()

	iso := newTestIsolate()
	type key struct{}
	data := &key{}

	outer := newUserDataScope(iso, data)
	if iso.UserData() != data {
		t.Fatalf("UserData() = %v, want %v", iso.UserData(), data)
	}

	inner := newUserDataScope(iso, data)
	if iso.UserData() != data {
		t.Fatalf("nested UserData() = %v, want %v", iso.UserData(), data)
	}
	inner.close()
	if iso.UserData() != data {
		t.Fatalf("after inner close, UserData() = %v, want %v", iso.UserData(), data)
	}

	outer.close()
	if iso.UserData() != nil {
		t.Fatalf("after outer close, UserData() = %v, want nil", iso.UserData())
	}
}

func TestUserDataScopeNestedDifferentValuePanics(t *testing.T) {
	t.Parallel()

	iso := newTestIsolate()
	outer := newUserDataScope(iso, "a")
	defer outer.close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nested scope with a different value")
		}
	}()
	newUserDataScope(iso, "b")
}

func TestUserDataScopeAllowsNilThenValue(t *testing.T) {
	t.Parallel()

	iso := newTestIsolate()
	outer := newUserDataScope(iso, nil)
	defer outer.close()

	// A nested scope writing a concrete value over a nil prior is not a
	// conflict: the assertion only fires when both sides are non-nil and
	// unequal.
	inner := newUserDataScope(iso, "value")
	defer inner.close()
	if iso.UserData() != "value" {
		t.Fatalf("UserData() = %v, want %q", iso.UserData(), "value")
	}
}
