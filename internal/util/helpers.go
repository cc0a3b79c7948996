package util

import (
	"html/template"
	"log/slog"
	"os"
)

// MustCompileTemplate compiles a template with the given name and content.
// Exits with a fatal error if compilation fails. Used during initialization
// when template failures are unrecoverable.
func MustCompileTemplate(name string, funcs template.FuncMap, content string) *template.Template {
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		slog.Error("failed to compile template", "template", name, "error", err)
		os.Exit(1)
	}
	return t
}
