// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned by [GetExecutableName] when os.Args[0] is unusable.
const FallbackName = "express-crud-scaffold"

// GetExecutableName returns the name the program was invoked as, without
// directory components or a trailing .exe, for use in usage strings.
//
// Both '/' and '\' are treated as separators so a Windows-style invocation
// path yields a clean name on any operating system.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
