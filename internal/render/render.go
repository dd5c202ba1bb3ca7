// File: render.go
// Title: Template Renderer
// Description: Parses template files with the info functions installed and
//              executes a named template against the data model of a run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/x/ansi"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/internal/info"
)

// Options configure a Renderer
type Options struct {
	// ArgNameInfo is the data model key of the info object
	ArgNameInfo string

	// WrapColumn > 0 wraps output lines at that column
	WrapColumn int
}

// Renderer expands templates for one run. It owns no state besides the info
// object of that run.
type Renderer struct {
	info   *info.Info
	logger *mdwlog.Logger
	opts   Options
}

// New creates a renderer for the run described by inf
func New(inf *info.Info, logger *mdwlog.Logger, opts Options) *Renderer {
	if opts.ArgNameInfo == "" {
		opts.ArgNameInfo = "info"
	}
	if logger == nil {
		logger = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelOff, Output: io.Discard})
	}
	return &Renderer{info: inf, logger: logger.WithName("render"), opts: opts}
}

// Funcs returns the template functions bound to inf
func Funcs(inf *info.Info) template.FuncMap {
	command := func(c interface{ Invoke(string) any }) func(...any) string {
		return func(args ...any) string {
			c.Invoke(concat(args))
			return ""
		}
	}

	return template.FuncMap{
		"calc": func(args ...any) any {
			return nothing(inf.Calc.Evaluate(concat(args)))
		},
		"error": command(inf.Error),
		"warn":  command(inf.Warn),
		"info":  command(inf.Info),
		"debug": command(inf.Debug),
	}
}

// Parse parses the template text with the info functions installed. The
// text may define several named templates.
func (r *Renderer) Parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(Funcs(r.info)).Parse(text)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse template").
			WithCode(mdwerror.CodeTemplate).
			WithOperation("render.Parse").
			WithDetail("template", name)
	}
	return tmpl, nil
}

// RenderFile parses the template file at path and executes the template
// named templateName, or the file's own template if templateName is empty.
func (r *Renderer) RenderFile(w io.Writer, path, templateName string, data map[string]any) error {
	text, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIO
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read template").
			WithCode(code).
			WithOperation("render.RenderFile").
			WithDetail("path", path)
	}

	name := filepath.Base(path)
	if templateName == "" {
		templateName = name
	}
	r.info.SetTemplateInfo(path, templateName, r.opts.ArgNameInfo, r.opts.WrapColumn)

	tmpl, err := r.Parse(name, string(text))
	if err != nil {
		return err
	}
	return r.Execute(w, tmpl, templateName, data)
}

// Execute runs the template named templateName against data with the info
// object added under its argument name. A data attribute of that name takes
// precedence over the info object.
func (r *Renderer) Execute(w io.Writer, tmpl *template.Template, templateName string, data map[string]any) error {
	timer := r.logger.StartTimer("render").WithField("template", templateName)
	defer timer.Stop()

	model := make(map[string]any, len(data)+1)
	for k, v := range data {
		model[k] = v
	}
	if _, taken := model[r.opts.ArgNameInfo]; taken {
		r.logger.Debug("data attribute hides the info object",
			mdwlog.String("attribute", r.opts.ArgNameInfo))
	} else {
		model[r.opts.ArgNameInfo] = r.info
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateName, model); err != nil {
		return mdwerror.Wrap(err, "failed to expand template").
			WithCode(mdwerror.CodeTemplate).
			WithOperation("render.Execute").
			WithDetail("template", templateName)
	}

	out := buf.String()
	if r.opts.WrapColumn > 0 {
		out = ansi.Wrap(out, r.opts.WrapColumn, "")
	}

	if _, err := io.WriteString(w, out); err != nil {
		return mdwerror.Wrap(err, "failed to write output").
			WithCode(mdwerror.CodeIO).
			WithOperation("render.Execute")
	}
	return nil
}

// concat joins the arguments without separators, so keys and messages can
// be assembled from literals and attributes
func concat(args []any) string {
	var sb strings.Builder
	for _, a := range args {
		fmt.Fprint(&sb, a)
	}
	return sb.String()
}

// nothing maps a nil result to empty text; text/template would print
// "<no value>" for it
func nothing(v any) any {
	if v == nil {
		return ""
	}
	return v
}
