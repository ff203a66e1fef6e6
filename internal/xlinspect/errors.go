package xlinspect

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Stages at which an inspection can fail.
const (
	StageOpen      = "open"
	StageDimension = "dimension"
	StageCells     = "cells"
	StageRender    = "render"
	StagePanic     = "panic"
)

// InspectionError represents a failed inspection. It records the call stack
// at the point it was created.
type InspectionError struct {
	Path      string
	Stage     string
	SheetName string
	Err       error
	stack     []uintptr
}

func (e *InspectionError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("inspection of %s failed in sheet %q (%s): %v", e.Path, e.SheetName, e.Stage, e.Err)
	}
	return fmt.Sprintf("inspection of %s failed (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// NewInspectionError creates a new InspectionError, capturing the caller's stack.
func NewInspectionError(path, stage, sheetName string, err error) *InspectionError {
	return newInspectionError(path, stage, sheetName, err, 3)
}

func newInspectionError(path, stage, sheetName string, err error, skip int) *InspectionError {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip, pcs)
	return &InspectionError{
		Path:      path,
		Stage:     stage,
		SheetName: sheetName,
		Err:       err,
		stack:     pcs[:n],
	}
}

// Trace renders the error chain followed by the captured call stack.
func (e *InspectionError) Trace() string {
	var b strings.Builder
	b.WriteString("Trace (most recent error first):\n")
	depth := 0
	for err := error(e); err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(&b, "  [%d] %T: %v\n", depth, err, err)
		depth++
	}

	if len(e.stack) > 0 {
		b.WriteString("Stack:\n")
		frames := runtime.CallersFrames(e.stack)
		for {
			frame, more := frames.Next()
			fmt.Fprintf(&b, "  %s\n      %s:%d\n", frame.Function, frame.File, frame.Line)
			if !more {
				break
			}
		}
	}
	return b.String()
}
