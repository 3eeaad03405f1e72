package cfg

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// WriteParams describes an item cfg to generate. Tags is a ';' separated
// list. An empty Content falls back to Defaults.BundleDir.
type WriteParams struct {
	Title       string
	Description string
	Tags        string
	Content     string
	Language    string
	Visibility  string
	FilePath    string
}

// Defaults are the values taken from the settings store.
type Defaults struct {
	Preview   string
	BundleDir string
}

var tagSeparator = regexp.MustCompile(`;\s*`)

// FormatTags turns "a; b;;c" into `"a", "b", "c"`. Empty and blank segments
// are dropped; an input with no tags yields "".
func FormatTags(tags string) string {
	var quoted []string
	for _, tag := range tagSeparator.Split(tags, -1) {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		quoted = append(quoted, `"`+tag+`"`)
	}
	return strings.Join(quoted, ", ")
}

var itemTemplate = template.Must(template.New("item.cfg").
	Funcs(sprig.TxtFuncMap()).
	Parse(`title = "{{ .Title }}";
description = "{{ .Description }}";
preview = "{{ .Preview }}";
content = "{{ .Content | default .BundleDir }}";
language = "{{ .Language }}";
visibility = "{{ .Visibility }}";
tags = [{{ .Tags }}]`))

type itemView struct {
	WriteParams
	Preview   string
	BundleDir string
}

// Render produces the cfg text for params. Values are written verbatim, so
// any value holding a double quote or a line break is rejected.
func Render(params WriteParams, defaults Defaults) (string, error) {
	if err := validateParams(params, defaults); err != nil {
		return "", err
	}

	view := itemView{
		WriteParams: params,
		Preview:     defaults.Preview,
		BundleDir:   defaults.BundleDir,
	}
	view.Tags = FormatTags(params.Tags)

	var b strings.Builder
	if err := itemTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render cfg: %w", err)
	}
	return b.String(), nil
}

func validateParams(p WriteParams, d Defaults) error {
	fields := []struct{ name, value string }{
		{"title", p.Title},
		{"description", p.Description},
		{"content", p.Content},
		{"language", p.Language},
		{"visibility", p.Visibility},
		{"preview", d.Preview},
		{"bundle dir", d.BundleDir},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, "\"\r\n") {
			return &InvalidValueError{Field: f.name, Value: f.value}
		}
	}
	for _, tag := range tagSeparator.Split(p.Tags, -1) {
		if strings.ContainsAny(tag, "\"\r\n") {
			return &InvalidValueError{Field: "tags", Value: tag}
		}
	}
	return nil
}
