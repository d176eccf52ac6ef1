// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package core embeds a V8 JavaScript isolate behind a small set of
// components: buffer primitives for crossing the cgo boundary without
// copying, a module registry and linker for ES module graphs, a context
// initializer that installs the host-facing `Deno.core` namespace, an
// exception encoder that turns V8 exceptions into a canonical JSON
// document, and a message bridge that carries (opID, control, zeroCopy)
// tuples between Go and JS in both synchronous and asynchronous modes.
//
// corejs does not parse, transpile, or fetch source; it runs source text
// and module graphs its host has already resolved.
package core
