// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package names derives the four casing variants of an entity name that the
// scaffold templates are filled with.
//
// The caller always supplies both the singular and the plural spelling; this
// package never infers a plural, and changes nothing but the case of the first
// character. Case mapping is rune-aware, so names starting with a multi-byte
// character are not corrupted.
//
// Example usage:
//
//	forms, err := names.Derive("task", "tasks")
//	if err != nil {
//		return err
//	}
//	fmt.Println(forms.Name, forms.NamePlural) // Task Tasks
package names
