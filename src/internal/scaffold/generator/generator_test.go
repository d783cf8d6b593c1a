// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/names"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectDirs = []string{"models", "repositories", "services", "controllers", "routes"}

var taskPaths = []string{
	"models/task.model.ts",
	"repositories/task.repository.ts",
	"services/task.service.ts",
	"controllers/task.controller.ts",
	"routes/task.route.ts",
}

// newProject creates a temp dir holding the given top-level directories,
// or all five when none are given.
func newProject(t *testing.T, dirs ...string) string {
	t.Helper()
	if len(dirs) == 0 {
		dirs = projectDirs
	}

	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}
	return root
}

// snapshot maps every regular file below root to its content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func taskForms(t *testing.T) names.Forms {
	t.Helper()
	forms, err := names.Derive("task", "tasks")
	require.NoError(t, err)
	return forms
}

// targetErrorsOf flattens a joined error into its TargetErrors.
func targetErrorsOf(err error) []*TargetError {
	var out []*TargetError
	var walk func(error)
	walk = func(err error) {
		if te, ok := err.(*TargetError); ok {
			out = append(out, te)
			return
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
		}
	}
	walk(err)
	return out
}

func TestRun_TaskScenario(t *testing.T) {
	root := newProject(t)
	forms := taskForms(t)

	written, err := New(root).Run(context.Background(), forms)
	require.NoError(t, err)
	assert.Equal(t, taskPaths, written)

	files := snapshot(t, root)
	require.Len(t, files, 5)
	for _, p := range taskPaths {
		assert.Contains(t, files, p)
	}

	service := files["services/task.service.ts"]
	for _, want := range []string{"getTasks", "getTask", "createTask", "updateTask", "deleteTask"} {
		assert.Contains(t, service, want)
	}

	for _, kind := range registry.Kinds() {
		rel, err := registry.OutputPath(kind, forms)
		require.NoError(t, err)
		want, err := registry.Render(kind, forms)
		require.NoError(t, err)
		assert.Equal(t, want, files[rel], "%s content should match its rendered template", kind)
	}
}

func TestRun_SecondRunConflictsOnEveryTarget(t *testing.T) {
	root := newProject(t)
	forms := taskForms(t)
	gen := New(root)

	_, err := gen.Run(context.Background(), forms)
	require.NoError(t, err)
	before := snapshot(t, root)

	// Make the first run's output distinguishable from a fresh render.
	for _, p := range taskPaths {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), []byte("edited "+p), 0o644))
	}
	edited := snapshot(t, root)
	require.NotEqual(t, before, edited)

	written, err := gen.Run(context.Background(), forms)
	require.Error(t, err)
	assert.Nil(t, written)
	assert.ErrorIs(t, err, ErrTargetConflict)

	conflicts := targetErrorsOf(err)
	require.Len(t, conflicts, 5, "every target should be reported")
	for i, te := range conflicts {
		assert.ErrorIs(t, te, ErrTargetConflict)
		assert.Equal(t, taskPaths[i], te.Path)
		assert.Contains(t, err.Error(), `file "`+taskPaths[i]+`" already exists`)
	}

	assert.Equal(t, edited, snapshot(t, root), "existing files must be left byte-for-byte unchanged")
}

func TestRun_SingleConflictWritesNothing(t *testing.T) {
	for _, existing := range taskPaths {
		t.Run(existing, func(t *testing.T) {
			root := newProject(t)
			require.NoError(t, os.WriteFile(filepath.Join(root, existing), []byte("keep me"), 0o644))

			_, err := New(root).Run(context.Background(), taskForms(t))
			require.ErrorIs(t, err, ErrTargetConflict)
			assert.NotErrorIs(t, err, ErrDirectory)

			assert.Equal(t, map[string]string{existing: "keep me"}, snapshot(t, root))
		})
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	root := newProject(t, "repositories", "services", "controllers", "routes")

	_, err := New(root).Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrDirectory)
	assert.Contains(t, err.Error(), `"models" is not a directory`)

	errs := targetErrorsOf(err)
	require.Len(t, errs, 1)
	assert.Equal(t, registry.Model, errs[0].Kind)
	assert.Equal(t, "models", errs[0].Dir)

	assert.Empty(t, snapshot(t, root), "no files may be created")
}

func TestRun_DirectoryIsAFile(t *testing.T) {
	root := newProject(t, "models", "repositories", "services", "controllers")
	require.NoError(t, os.WriteFile(filepath.Join(root, "routes"), []byte("not a dir"), 0o644))

	_, err := New(root).Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrDirectory)
	assert.Contains(t, err.Error(), `"routes"`)

	assert.Equal(t, map[string]string{"routes": "not a dir"}, snapshot(t, root))
}

func TestRun_WrongWorkingDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := New(root).Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrDirectory)
	assert.Len(t, targetErrorsOf(err), 5)
	assert.Empty(t, snapshot(t, root))
}

func TestRun_ConflictAndDirectoryReportedTogether(t *testing.T) {
	root := newProject(t, "models", "repositories", "services", "controllers")
	require.NoError(t, os.WriteFile(filepath.Join(root, "models/task.model.ts"), nil, 0o644))

	err := New(root).Validate(taskForms(t))
	assert.ErrorIs(t, err, ErrTargetConflict)
	assert.ErrorIs(t, err, ErrDirectory)
}

func TestRun_CanceledContext(t *testing.T) {
	root := newProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(root).Run(ctx, taskForms(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, snapshot(t, root))
}

func TestNew_DefaultRoot(t *testing.T) {
	assert.Equal(t, ".", New("").Root())
	assert.Equal(t, "/srv/app", New("/srv/app").Root())
}

func TestWriteAll_RollbackOnOpenFailure(t *testing.T) {
	root := newProject(t)
	gen := New(root)

	denied := errors.New("permission denied")
	gen.openFile = func(name string, flag int, perm fs.FileMode) (*os.File, error) {
		if strings.HasSuffix(name, "task.controller.ts") {
			return nil, denied
		}
		return os.OpenFile(name, flag, perm)
	}

	written, err := gen.Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, denied)
	assert.Nil(t, written)

	var te *TargetError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, registry.Controller, te.Kind)
	assert.Contains(t, err.Error(), `writing "controllers/task.controller.ts"`)

	assert.Empty(t, snapshot(t, root), "files written before the failure must be rolled back")
}

func TestWriteAll_RollbackOnWriteFailure(t *testing.T) {
	root := newProject(t)
	gen := New(root)

	// Hand back a read-only handle so the write itself fails after creation.
	gen.openFile = func(name string, flag int, perm fs.FileMode) (*os.File, error) {
		f, err := os.OpenFile(name, flag, perm)
		if err != nil || !strings.HasSuffix(name, "task.service.ts") {
			return f, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		return os.Open(name)
	}

	_, err := gen.Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrWrite)

	var te *TargetError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, registry.Service, te.Kind)

	assert.Empty(t, snapshot(t, root), "partial file and earlier files must be removed")
}

func TestWriteAll_FileAppearsAfterValidation(t *testing.T) {
	root := newProject(t)
	gen := New(root)
	forms := taskForms(t)

	require.NoError(t, gen.Validate(forms))

	// Someone else creates the controller between validation and writing.
	racy := filepath.Join(root, "controllers", "task.controller.ts")
	require.NoError(t, os.WriteFile(racy, []byte("theirs"), 0o644))

	_, err := gen.WriteAll(context.Background(), forms)
	require.ErrorIs(t, err, ErrTargetConflict)

	assert.Equal(t, map[string]string{"controllers/task.controller.ts": "theirs"}, snapshot(t, root))
}

func TestWriteAll_CanceledMidway(t *testing.T) {
	root := newProject(t)
	gen := New(root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen.openFile = func(name string, flag int, perm fs.FileMode) (*os.File, error) {
		if strings.HasSuffix(name, "task.model.ts") {
			cancel()
		}
		return os.OpenFile(name, flag, perm)
	}

	_, err := gen.WriteAll(ctx, taskForms(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "scaffold interrupted")
	assert.Empty(t, snapshot(t, root))
}

func TestWriteAll_RollbackFailureIsReported(t *testing.T) {
	root := newProject(t)
	gen := New(root)

	gen.openFile = func(name string, flag int, perm fs.FileMode) (*os.File, error) {
		if strings.HasSuffix(name, "task.route.ts") {
			return nil, errors.New("disk full")
		}
		return os.OpenFile(name, flag, perm)
	}
	stuck := errors.New("device busy")
	gen.remove = func(name string) error {
		if strings.HasSuffix(name, "task.model.ts") {
			return stuck
		}
		return os.Remove(name)
	}

	_, err := gen.Run(context.Background(), taskForms(t))
	require.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, stuck)
	assert.Contains(t, err.Error(), `rolling back "models/task.model.ts"`)

	assert.Equal(t, []string{"models/task.model.ts"}, keys(snapshot(t, root)))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestPlan(t *testing.T) {
	root := newProject(t, "models", "repositories", "services", "controllers")
	require.NoError(t, os.WriteFile(filepath.Join(root, "services/task.service.ts"), nil, 0o644))

	targets, err := New(root).Plan(taskForms(t))
	require.NoError(t, err)
	require.Len(t, targets, 5)

	want := []Status{StatusCreate, StatusCreate, StatusExists, StatusCreate, StatusMissingDir}
	for i, tgt := range targets {
		assert.Equal(t, taskPaths[i], tgt.Path)
		assert.Equal(t, want[i], tgt.Status, tgt.Path)
	}

	err = PlanError(targets)
	assert.ErrorIs(t, err, ErrTargetConflict)
	assert.ErrorIs(t, err, ErrDirectory)

	assert.Equal(t, map[string]string{"services/task.service.ts": ""}, snapshot(t, root), "planning must not write")
}

func TestPlanError_Clean(t *testing.T) {
	targets, err := New(newProject(t)).Plan(taskForms(t))
	require.NoError(t, err)
	assert.NoError(t, PlanError(targets))
}

func TestRenderPlanTable(t *testing.T) {
	targets := []Target{
		{Kind: registry.Model, Path: "models/task.model.ts", Status: StatusCreate},
		{Kind: registry.Route, Path: "routes/task.route.ts", Status: StatusExists},
	}

	out, err := RenderPlanTable(targets)
	require.NoError(t, err)

	for _, want := range []string{"models/task.model.ts", "routes/task.route.ts", "create", "exists", "model", "route"} {
		assert.Contains(t, out, want)
	}

	empty, err := RenderPlanTable(nil)
	require.NoError(t, err)
	assert.Equal(t, "No files to generate\n", empty)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "create", StatusCreate.String())
	assert.Equal(t, "exists", StatusExists.String())
	assert.Equal(t, "missing-dir", StatusMissingDir.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}

func TestTargetError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *TargetError
		want string
	}{
		{
			name: "conflict",
			err:  &TargetError{Kind: registry.Model, Path: "models/task.model.ts", Dir: "models", Err: ErrTargetConflict},
			want: `file "models/task.model.ts" already exists`,
		},
		{
			name: "directory",
			err:  &TargetError{Kind: registry.Model, Path: "models/task.model.ts", Dir: "models", Err: ErrDirectory},
			want: `"models" is not a directory! Make sure you ran the tool on the correct folder`,
		},
		{
			name: "write",
			err:  &TargetError{Kind: registry.Route, Path: "routes/task.route.ts", Dir: "routes", Err: ErrWrite, Cause: errors.New("disk full")},
			want: `writing "routes/task.route.ts": disk full`,
		},
		{
			name: "write without cause",
			err:  &TargetError{Kind: registry.Route, Path: "routes/task.route.ts", Dir: "routes", Err: ErrWrite},
			want: `route "routes/task.route.ts": write failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.err.Err)
		})
	}
}
