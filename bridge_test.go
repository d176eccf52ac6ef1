// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	core "github.com/nimbusjs/corejs"
	"github.com/nimbusjs/corejs/internal/hostmock"
)

func TestSendSynchronousEcho(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	host := hostmock.NewMockHost(ctrl)
	receive, resolve, dynImport := hostmock.Bind(host)

	iso, err := core.NewIsolateWithConfig(core.Config{
		Receive:   receive,
		Resolve:   resolve,
		DynImport: dynImport,
	})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig() = %v, want nil", err)
	}
	defer iso.Dispose()

	host.EXPECT().
		Receive(gomock.Any(), uint32(1), gomock.Any(), nil).
		DoAndReturn(func(_ interface{}, opID uint32, control, _ []byte) []byte {
			out := make([]byte, len(control))
			copy(out, control)
			for i := range out {
				out[i] = control[i] + 1
			}
			return out
		})

	err = iso.Execute(nil, "echo.js", `
		const req = new Uint8Array([1, 2, 3]);
		const resp = Deno.core.send(1, req);
		if (resp.length !== 3 || resp[0] !== 2 || resp[1] !== 3 || resp[2] !== 4) {
			throw new Error("unexpected echo response: " + Array.from(resp));
		}
	`)
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
}

func TestSendAsynchronousResponse(t *testing.T) {
	t.Parallel()

	var pendingOpID uint32
	iso, err := core.NewIsolateWithConfig(core.Config{
		Receive: func(userData interface{}, opID uint32, control, zeroCopy []byte) []byte {
			pendingOpID = opID
			return nil // deferred; delivered later via iso.Respond
		},
	})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig() = %v, want nil", err)
	}
	defer iso.Dispose()

	err = iso.Execute(nil, "async.js", `
		let got = null;
		Deno.core.recv((opId, buf) => { got = [opId, Array.from(buf)]; });
		Deno.core.send(7, new Uint8Array([9]));
		globalThis.__got = () => got;
	`)
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if pendingOpID != 7 {
		t.Fatalf("pendingOpID = %d, want 7", pendingOpID)
	}

	iso.Respond(nil, pendingOpID, []byte{42})
}

func TestSendReentrantSendIsForbidden(t *testing.T) {
	t.Parallel()

	var iso *core.Isolate
	iso, err := core.NewIsolateWithConfig(core.Config{
		Receive: func(userData interface{}, opID uint32, control, zeroCopy []byte) []byte {
			if opID != 1 {
				return nil
			}
			// A second, nested synchronous send driven from inside the
			// callback of an outer in-flight send; it must raise a JS
			// exception rather than corrupt the outer send's bookkeeping.
			nestedErr := iso.Execute(nil, "nested.js", `Deno.core.send(2, new Uint8Array([1]));`)
			if nestedErr == nil {
				panic("nested Deno.core.send did not raise")
			}
			return []byte(nestedErr.Error())
		},
	})
	if err != nil {
		t.Fatalf("NewIsolateWithConfig() = %v, want nil", err)
	}
	defer iso.Dispose()

	err = iso.Execute(nil, "outer.js", `Deno.core.send(1, new Uint8Array([0]));`)
	if err != nil {
		t.Fatalf("Execute() = %v, want nil (the outer send must itself succeed)", err)
	}
}
