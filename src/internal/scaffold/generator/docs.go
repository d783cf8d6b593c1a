// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generator writes the scaffold files for one entity.
//
// A run has two phases. Validation inspects all five targets first: a target
// fails if its file already exists or if its top-level directory (models,
// repositories, services, controllers, routes) is missing, which usually means
// the tool was started from the wrong folder. If any target fails, nothing is
// written and every problem is reported at once.
//
// The write phase renders all templates in memory, then creates each file with
// O_EXCL so an existing file is never replaced. When a write fails part way,
// the files created earlier in the same run are removed, leaving the project
// as it was.
//
// Example usage:
//
//	forms, err := names.Derive("task", "tasks")
//	if err != nil {
//		return err
//	}
//	written, err := generator.New(".").Run(ctx, forms)
//	if errors.Is(err, generator.ErrTargetConflict) {
//		// rename, move or delete the existing files and re-run
//	}
package generator
