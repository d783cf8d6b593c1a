// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/names"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/registry"
)

// Status is the pre-flight state of a single target.
type Status int

const (
	// StatusCreate means the file can be created.
	StatusCreate Status = iota
	// StatusExists means the file is already there and would be a conflict.
	StatusExists
	// StatusMissingDir means the top-level directory is missing or not a directory.
	StatusMissingDir
)

func (s Status) String() string {
	switch s {
	case StatusCreate:
		return "create"
	case StatusExists:
		return "exists"
	case StatusMissingDir:
		return "missing-dir"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Target is one planned output file.
type Target struct {
	Kind   registry.FileKind
	Path   string // slash-separated, relative to the generator root
	Status Status
}

// Dir returns the top-level directory component of the target path.
func (t Target) Dir() string {
	dir, _, _ := strings.Cut(t.Path, "/")
	return dir
}

// Generator writes the scaffold files for an entity below a project root.
type Generator struct {
	root string

	openFile func(name string, flag int, perm fs.FileMode) (*os.File, error)
	remove   func(name string) error
}

// New returns a Generator rooted at root. An empty root means the current
// working directory.
func New(root string) *Generator {
	if root == "" {
		root = "."
	}
	return &Generator{
		root:     root,
		openFile: os.OpenFile,
		remove:   os.Remove,
	}
}

// Root returns the directory target paths are resolved against.
func (g *Generator) Root() string { return g.root }

func (g *Generator) abs(rel string) string {
	return filepath.Join(g.root, filepath.FromSlash(rel))
}

// Plan computes every target and its pre-flight status without touching the
// filesystem beyond stat calls.
func (g *Generator) Plan(forms names.Forms) ([]Target, error) {
	kinds := registry.Kinds()
	targets := make([]Target, 0, len(kinds))

	for _, kind := range kinds {
		rel, err := registry.OutputPath(kind, forms)
		if err != nil {
			return nil, err
		}

		t := Target{Kind: kind, Path: rel}
		if t.Status, err = g.inspect(t); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, nil
}

func (g *Generator) inspect(t Target) (Status, error) {
	info, err := os.Stat(g.abs(t.Dir()))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return StatusMissingDir, nil
	case err != nil:
		return 0, fmt.Errorf("checking directory %q: %w", t.Dir(), err)
	case !info.IsDir():
		return StatusMissingDir, nil
	}

	_, err = os.Lstat(g.abs(t.Path))
	switch {
	case err == nil:
		return StatusExists, nil
	case errors.Is(err, fs.ErrNotExist):
		return StatusCreate, nil
	default:
		return 0, fmt.Errorf("checking file %q: %w", t.Path, err)
	}
}

// Validate checks every target before anything is written. All conflicts and
// directory problems are reported together, joined with [errors.Join].
func (g *Generator) Validate(forms names.Forms) error {
	targets, err := g.Plan(forms)
	if err != nil {
		return err
	}
	return targetErrors(targets)
}

func targetErrors(targets []Target) error {
	var errs []error
	for _, t := range targets {
		switch t.Status {
		case StatusExists:
			errs = append(errs, &TargetError{Kind: t.Kind, Path: t.Path, Dir: t.Dir(), Err: ErrTargetConflict})
		case StatusMissingDir:
			errs = append(errs, &TargetError{Kind: t.Kind, Path: t.Path, Dir: t.Dir(), Err: ErrDirectory})
		}
	}
	return errors.Join(errs...)
}

type renderedFile struct {
	target  Target
	content string
}

// WriteAll renders every template and then creates the files. Nothing is
// created until all templates rendered. Files are opened with O_EXCL, so an
// existing file is never overwritten. If any file fails, the files this call
// already created are removed again. It returns the created paths in
// generation order.
func (g *Generator) WriteAll(ctx context.Context, forms names.Forms) ([]string, error) {
	files, err := renderAll(forms)
	if err != nil {
		return nil, err
	}

	created := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, g.rollback(created, fmt.Errorf("scaffold interrupted: %w", err))
		}
		if err := g.create(f); err != nil {
			return nil, g.rollback(created, err)
		}
		created = append(created, f.target.Path)
	}

	return created, nil
}

func renderAll(forms names.Forms) ([]renderedFile, error) {
	kinds := registry.Kinds()
	files := make([]renderedFile, 0, len(kinds))

	for _, kind := range kinds {
		rel, err := registry.OutputPath(kind, forms)
		if err != nil {
			return nil, err
		}
		content, err := registry.Render(kind, forms)
		if err != nil {
			return nil, err
		}
		files = append(files, renderedFile{target: Target{Kind: kind, Path: rel}, content: content})
	}

	return files, nil
}

func (g *Generator) create(f renderedFile) error {
	t := f.target
	full := g.abs(t.Path)

	file, err := g.openFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &TargetError{Kind: t.Kind, Path: t.Path, Dir: t.Dir(), Err: ErrTargetConflict}
		}
		return &TargetError{Kind: t.Kind, Path: t.Path, Dir: t.Dir(), Err: ErrWrite, Cause: err}
	}

	w := bufio.NewWriter(file)
	_, werr := w.WriteString(f.content)
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	if werr == nil {
		return nil
	}

	// O_EXCL guarantees the partial file is ours.
	writeErr := &TargetError{Kind: t.Kind, Path: t.Path, Dir: t.Dir(), Err: ErrWrite, Cause: werr}
	if rerr := g.remove(full); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
		return errors.Join(writeErr, fmt.Errorf("removing partial file %q: %w", t.Path, rerr))
	}
	return writeErr
}

// rollback removes created files in reverse order and joins any removal
// failures onto cause.
func (g *Generator) rollback(created []string, cause error) error {
	errs := []error{cause}
	for i := len(created) - 1; i >= 0; i-- {
		if err := g.remove(g.abs(created[i])); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("rolling back %q: %w", created[i], err))
		}
	}
	return errors.Join(errs...)
}

// Run validates every target and, only if all of them pass, writes them.
func (g *Generator) Run(ctx context.Context, forms names.Forms) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(forms); err != nil {
		return nil, err
	}
	return g.WriteAll(ctx, forms)
}
