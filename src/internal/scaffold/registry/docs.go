// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package registry holds the fixed set of files a scaffold run produces.
//
// Each [FileKind] maps to exactly one output path pattern and one embedded
// template body. Both are inert data: the only logic here is substituting the
// four name forms from [names.Forms] into them with [text/template]. A template
// that references a placeholder outside that set fails with [ErrConfiguration]
// rather than rendering a half-filled file.
//
// The set of kinds is closed. Adding a kind means adding a constant, a path
// pattern and a template file.
//
// Example usage:
//
//	forms, _ := names.Derive("task", "tasks")
//	for _, kind := range registry.Kinds() {
//		path, _ := registry.OutputPath(kind, forms) // models/task.model.ts, ...
//		body, err := registry.Render(kind, forms)
//		if err != nil {
//			return err
//		}
//		_ = body
//	}
package registry
