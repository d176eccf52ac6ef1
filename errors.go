// Copyright 2024 the corejs authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import (
	"encoding/json"
	"fmt"
)

// StackFrame is one entry of ExceptionInfo.Frames.
type StackFrame struct {
	Line           int    `json:"line"`
	Column         int    `json:"column"`
	FunctionName   string `json:"functionName,omitempty"`
	ScriptName     string `json:"scriptName,omitempty"`
	IsEval         bool   `json:"isEval,omitempty"`
	IsConstructor  bool   `json:"isConstructor,omitempty"`
	IsWasm         bool   `json:"isWasm,omitempty"`
}

// ExceptionInfo is the canonical JSON document the exception encoder
// produces for every captured V8 exception and uncaught message,
// field-for-field as described in spec.md section 4.5.
type ExceptionInfo struct {
	Message              string       `json:"message"`
	ScriptResourceName   string       `json:"scriptResourceName"`
	SourceLine           string       `json:"sourceLine"`
	LineNumber           int          `json:"lineNumber"`
	StartPosition        int          `json:"startPosition"`
	EndPosition          int          `json:"endPosition"`
	ErrorLevel           int          `json:"errorLevel"`
	StartColumn          int          `json:"startColumn"`
	EndColumn            int          `json:"endColumn"`
	IsSharedCrossOrigin  bool         `json:"isSharedCrossOrigin"`
	IsOpaque             bool         `json:"isOpaque"`
	Frames               []StackFrame `json:"frames"`
}

// ExceptionError wraps an ExceptionInfo captured from the engine. It is
// returned by Execute, ModNew, ModInstantiate and ModEvaluate when the
// engine raised, and by LastException, mirroring the teacher's JSError
// type built from its RtnError C struct.
type ExceptionError struct {
	Info ExceptionInfo
	raw  string
}

func (e *ExceptionError) Error() string {
	if e.Info.ScriptResourceName != "" {
		return fmt.Sprintf("%s (%s:%d:%d)", e.Info.Message,
			e.Info.ScriptResourceName, e.Info.LineNumber, e.Info.StartColumn)
	}
	return e.Info.Message
}

// Raw returns the exact JSON document the engine produced, before it was
// unmarshaled into Info. Useful for hosts that want to forward it
// verbatim rather than re-encode ExceptionInfo.
func (e *ExceptionError) Raw() string { return e.raw }

// newExceptionError parses the JSON document produced by binding.cc's
// EncodeExceptionAsJSON. A malformed document is a fatal embedder bug,
// not a recoverable error, so it panics rather than returning a second
// error value — the engine is the only producer of this string and its
// shape is fixed.
func newExceptionError(jsonText string) *ExceptionError {
	var info ExceptionInfo
	if err := json.Unmarshal([]byte(jsonText), &info); err != nil {
		panic(fmt.Sprintf("core: malformed exception JSON from engine: %v", err))
	}
	return &ExceptionError{Info: info, raw: jsonText}
}
