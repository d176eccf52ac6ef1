// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import "fmt"

// userDataScope implements the RAII discipline spec.md section 4.2
// describes: every host-reentry boundary (Execute, ModInstantiate,
// ModEvaluate, RunMicrotasks, an asynchronous Respond) pushes one,
// recording the isolate's prior user_data, installing the new value, and
// on close asserting the value it wrote is still current before
// restoring the prior one. Nested scopes carrying the same value are
// idempotent; nested scopes carrying a different non-nil value are a
// programming error, exactly as libdeno.rs's UserDataScope asserts.
type userDataScope struct {
	iso    *Isolate
	wrote  interface{}
	prior  interface{}
}

func newUserDataScope(iso *Isolate, data interface{}) *userDataScope {
	iso.mu.Lock()
	defer iso.mu.Unlock()

	if iso.userData != nil && data != nil && iso.userData != data {
		panic(fmt.Sprintf("core: nested user-data scope: have %v, want %v",
			iso.userData, data))
	}
	prior := iso.userData
	iso.userData = data
	return &userDataScope{iso: iso, wrote: data, prior: prior}
}

func (s *userDataScope) close() {
	s.iso.mu.Lock()
	defer s.iso.mu.Unlock()
	if s.iso.userData != s.wrote {
		panic("core: user-data scope closed out of order")
	}
	s.iso.userData = s.prior
}

// UserData returns the value most recently installed by an open
// user-data scope on this isolate, or nil outside of one. Host callbacks
// invoked during Execute, ModInstantiate, ModEvaluate, or an
// asynchronous Respond can read it to recover call-scoped context
// without threading an extra parameter through every engine callback.
func (iso *Isolate) UserData() interface{} {
	iso.mu.Lock()
	defer iso.mu.Unlock()
	return iso.userData
}
