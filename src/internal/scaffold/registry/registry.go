// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package registry

import (
	"embed"
	"errors"
	"fmt"
	"text/template"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/names"
)

//go:embed templates/*.ts.tmpl
var templateFS embed.FS

// ErrConfiguration reports a broken registry entry: an unknown kind, a
// template that does not parse, or a placeholder the name forms do not provide.
var ErrConfiguration = errors.New("template configuration error")

// FileKind identifies one of the generated file roles.
type FileKind int

const (
	Model FileKind = iota
	Repository
	Service
	Controller
	Route
)

// entry ties a kind to its output path pattern and template file.
type entry struct {
	role        string
	pathPattern string
	template    string
}

var entries = [...]entry{
	Model:      {role: "model", pathPattern: "models/{{.name}}.model.ts", template: "model.ts.tmpl"},
	Repository: {role: "repository", pathPattern: "repositories/{{.name}}.repository.ts", template: "repository.ts.tmpl"},
	Service:    {role: "service", pathPattern: "services/{{.name}}.service.ts", template: "service.ts.tmpl"},
	Controller: {role: "controller", pathPattern: "controllers/{{.name}}.controller.ts", template: "controller.ts.tmpl"},
	Route:      {role: "route", pathPattern: "routes/{{.name}}.route.ts", template: "route.ts.tmpl"},
}

// Kinds returns every file kind in generation order.
func Kinds() []FileKind {
	return []FileKind{Model, Repository, Service, Controller, Route}
}

// String returns the lowercase role name, e.g. "controller".
func (k FileKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("FileKind(%d)", int(k))
	}
	return entries[k].role
}

func (k FileKind) valid() bool { return k >= 0 && int(k) < len(entries) }

func lookup(kind FileKind) (entry, error) {
	if !kind.valid() {
		return entry{}, fmt.Errorf("%w: unknown file kind %d", ErrConfiguration, int(kind))
	}
	return entries[kind], nil
}

// PathPatternFor returns the relative output path pattern for kind.
// The pattern holds a single {{.name}} placeholder.
func PathPatternFor(kind FileKind) (string, error) {
	e, err := lookup(kind)
	if err != nil {
		return "", err
	}
	return e.pathPattern, nil
}

// TemplateFor returns the literal template body for kind.
func TemplateFor(kind FileKind) (string, error) {
	e, err := lookup(kind)
	if err != nil {
		return "", err
	}

	body, err := templateFS.ReadFile("templates/" + e.template)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s template: %w", ErrConfiguration, e.role, err)
	}
	return string(body), nil
}

// OutputPath renders the path pattern of kind with forms. The result is
// slash-separated and relative to the project root.
func OutputPath(kind FileKind, forms names.Forms) (string, error) {
	pattern, err := PathPatternFor(kind)
	if err != nil {
		return "", err
	}
	return execute(kind.String()+" path", pattern, forms)
}

// Render fills the template of kind with forms and returns the file content.
func Render(kind FileKind, forms names.Forms) (string, error) {
	body, err := TemplateFor(kind)
	if err != nil {
		return "", err
	}
	return execute(kind.String(), body, forms)
}

// execute parses text and fills it with the placeholders of forms. Unknown
// placeholders are an error instead of rendering "<no value>".
func execute(name, text string, forms names.Forms) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s template: %w", ErrConfiguration, name, err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, forms.Placeholders()); err != nil {
		return "", fmt.Errorf("%w: rendering %s template: %w", ErrConfiguration, name, err)
	}
	return buf.String(), nil
}
