package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"sync"
	texttemplate "text/template"
)

// RenderContext is the flat data map a template is executed with.
type RenderContext map[string]any

// Renderer executes a template string against a RenderContext.
// Implementations must not read the clock or any other hidden state.
type Renderer interface {
	Render(tmpl string, data RenderContext) (string, error)
}

var funcs = map[string]any{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"join":  strings.Join,
	"default": func(def string, v any) string {
		if s := fmt.Sprint(v); v != nil && s != "" {
			return s
		}
		return def
	},
	"nl2br": func(s string) htmltemplate.HTML {
		escaped := htmltemplate.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
		return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}

// HTMLRenderer renders email bodies with contextual auto-escaping.
// Parsed templates are cached by source.
type HTMLRenderer struct {
	cache sync.Map
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(tmpl string, data RenderContext) (string, error) {
	t, err := r.parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]any(data)); err != nil {
		return "", fmt.Errorf("execute html template: %w", err)
	}

	return buf.String(), nil
}

func (r *HTMLRenderer) parse(tmpl string) (*htmltemplate.Template, error) {
	if cached, ok := r.cache.Load(tmpl); ok {
		return cached.(*htmltemplate.Template), nil
	}

	t, err := htmltemplate.New("body").Funcs(htmltemplate.FuncMap(funcs)).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}

	r.cache.Store(tmpl, t)
	return t, nil
}

// TextRenderer renders subject lines. Values are flattened to strings and
// missing keys render empty, so a subject never shows "<no value>".
type TextRenderer struct {
	cache sync.Map
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(tmpl string, data RenderContext) (string, error) {
	t, err := r.parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, flatten(data)); err != nil {
		return "", fmt.Errorf("execute text template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func (r *TextRenderer) parse(tmpl string) (*texttemplate.Template, error) {
	if cached, ok := r.cache.Load(tmpl); ok {
		return cached.(*texttemplate.Template), nil
	}

	t, err := texttemplate.New("subject").Funcs(texttemplate.FuncMap(funcs)).Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	r.cache.Store(tmpl, t)
	return t, nil
}

func flatten(data RenderContext) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		case htmltemplate.HTML:
			out[k] = string(val)
		case []string:
			out[k] = strings.Join(val, ", ")
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
