// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// ReceiveCallback is invoked synchronously whenever JS calls
// Deno.core.send(opID, control[, zeroCopy]). control and zeroCopy (when
// present) are only valid for the duration of the call; a host that needs
// to keep zeroCopy past the call must copy it. userData is the value
// installed by whichever Execute/ModEvaluate call is currently running
// the JS that triggered this send.
//
// Returning a non-nil response delivers it synchronously as the return
// value of the send() call that triggered this callback. Returning nil
// means the response, if any, will arrive later through Respond.
type ReceiveCallback func(userData interface{}, opID uint32, control []byte, zeroCopy []byte) []byte

// ResolveCallback resolves an import specifier relative to a referrer
// module to a previously registered ModuleID. userData is the value
// installed by the ModInstantiate call driving resolution. Returning 0
// tells the engine the specifier could not be resolved.
type ResolveCallback func(userData interface{}, specifier string, referrer ModuleID) ModuleID

// DynImportCallback is invoked for a dynamic `import()` expression. The
// host must eventually call Isolate.DynImportDone with the same id.
type DynImportCallback func(id int32, specifier string, referrer string)

// Config configures a new Isolate. It is a fixed record rather than a
// functional-options chain, matching deno_config in libdeno and the
// Data Model table's description of Configuration as a fixed record.
type Config struct {
	// WillSnapshot, when true, creates the isolate with a SnapshotCreator
	// instead of normal isolate creation, so Snapshot can later be called.
	WillSnapshot bool

	// LoadSnapshot, when non-nil, restores the isolate's heap and global
	// object from a previously produced snapshot blob. Mutually exclusive
	// with WillSnapshot.
	LoadSnapshot []byte

	// Shared is an optional block of memory exposed to JS as
	// Deno.core.shared, a SharedArrayBuffer view over the same bytes.
	Shared []byte

	Receive   ReceiveCallback
	Resolve   ResolveCallback
	DynImport DynImportCallback
}
