// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/registry"
)

var (
	// ErrTargetConflict is returned when an output file already exists.
	ErrTargetConflict = errors.New("target already exists")
	// ErrDirectory is returned when the top-level directory of an output
	// path is missing or is not a directory.
	ErrDirectory = errors.New("target directory missing")
	// ErrWrite is returned when creating or writing an output file fails.
	ErrWrite = errors.New("write failed")
)

// TargetError describes a problem with a single output file.
//
// It matches its sentinel (Err) and, when set, the underlying OS error
// (Cause) with [errors.Is] and [errors.As].
type TargetError struct {
	Kind  registry.FileKind
	Path  string
	Dir   string
	Err   error
	Cause error
}

func (e *TargetError) Error() string {
	switch {
	case errors.Is(e.Err, ErrTargetConflict):
		return fmt.Sprintf("file %q already exists", e.Path)
	case errors.Is(e.Err, ErrDirectory):
		return fmt.Sprintf("%q is not a directory! Make sure you ran the tool on the correct folder", e.Dir)
	case e.Cause != nil:
		return fmt.Sprintf("writing %q: %v", e.Path, e.Cause)
	default:
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Path, e.Err)
	}
}

// Unwrap exposes both the sentinel and the cause.
func (e *TargetError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
