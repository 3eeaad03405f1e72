package itemcfg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jlrickert/itemcfg/pkg/cfg"
)

type InfoOptions struct {
	Mod string
}

// Info renders every statement of a mod's cfg followed by the mapped keys.
// Missing mapped keys are shown rather than treated as errors.
func (t *Tool) Info(ctx context.Context, opts InfoOptions) (string, error) {
	path, err := t.Manager.Path(opts.Mod)
	if err != nil {
		return "", err
	}
	data, err := t.Manager.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	doc, err := cfg.Parse(data)
	if err != nil {
		return "", fmt.Errorf("unable to parse %s: %w", path, err)
	}

	fields := table.NewWriter()
	fields.SetStyle(table.StyleLight)
	fields.AppendHeader(table.Row{"Key", "Type", "Value"})
	for _, s := range doc.Statements {
		value := s.Value
		if s.Kind == cfg.KindList {
			value = "[" + value + "]"
		}
		fields.AppendRow(table.Row{s.Key, s.Kind.String(), value})
	}

	mapped := table.NewWriter()
	mapped.SetStyle(table.StyleLight)
	mapped.AppendHeader(table.Row{"Mapped", "Key", "Value"})
	for _, name := range cfg.MappedKeys() {
		spec, _ := cfg.LookupMappedKey(name)
		value, err := cfg.GetMappedValue(path, data, name)
		if err != nil {
			value = "(missing)"
		}
		mapped.AppendRow(table.Row{string(name), spec.Key, value})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", path)
	b.WriteString(fields.Render())
	b.WriteString("\n")
	b.WriteString(mapped.Render())
	b.WriteString("\n")
	return b.String(), nil
}
