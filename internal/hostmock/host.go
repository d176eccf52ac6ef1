// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package hostmock defines the Host contract a corejs embedder
// implements (the receive, resolve, and dynamic-import callbacks of
// core.Config) as an interface, plus a gomock-generated-style mock of
// it, so the bridge and linker can be exercised in tests without a host
// of their own.
package hostmock

import core "github.com/nimbusjs/corejs"

// Host groups the three callback contracts core.Config exposes so they
// can be mocked as a unit instead of three independent function values.
type Host interface {
	Receive(userData interface{}, opID uint32, control []byte, zeroCopy []byte) []byte
	Resolve(userData interface{}, specifier string, referrer core.ModuleID) core.ModuleID
	DynImport(id int32, specifier string, referrer string)
}

// Bind adapts a Host into the three independent callbacks
// core.Config expects.
func Bind(h Host) (core.ReceiveCallback, core.ResolveCallback, core.DynImportCallback) {
	return h.Receive, h.Resolve, h.DynImport
}
