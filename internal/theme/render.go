package theme

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ErrTemplateRender matches every *TemplateRenderError via errors.Is.
var ErrTemplateRender = errors.New("template render failed")

// TemplateRenderError reports a template that failed to parse or execute.
type TemplateRenderError struct {
	Template string
	Err      error
}

func (e *TemplateRenderError) Error() string {
	return fmt.Sprintf("failed to render template %q: %v", e.Template, e.Err)
}

func (e *TemplateRenderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTemplateRender.
func (e *TemplateRenderError) Is(target error) bool {
	return target == ErrTemplateRender
}

// TemplateFuncs returns the functions available to theme templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trimHash": func(s string) string { return strings.TrimPrefix(s, "#") },
	}
}

// Render executes the template text against ctx. Referencing a role that is
// not in ctx is an error.
func Render(name string, text []byte, ctx Context) (string, error) {
	tmpl, err := template.New(name).
		Funcs(TemplateFuncs()).
		Option("missingkey=error").
		Parse(string(text))
	if err != nil {
		return "", &TemplateRenderError{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", &TemplateRenderError{Template: name, Err: err}
	}

	return buf.String(), nil
}
