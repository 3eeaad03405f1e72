package itemcfg

import (
	"context"
	"fmt"

	"github.com/jlrickert/itemcfg/pkg/cfg"
)

// GetOptions selects either a raw key with a type or a mapped key.
type GetOptions struct {
	Mod string

	Key  string
	Type cfg.ValueType

	// Mapped, when set, takes precedence over Key and Type.
	Mapped cfg.MappedKey
}

// Get reads one value from the cfg file of a mod. A missing key is an error.
func (t *Tool) Get(ctx context.Context, opts GetOptions) (string, error) {
	if opts.Mapped != "" {
		if _, ok := cfg.LookupMappedKey(opts.Mapped); !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownMappedKey, string(opts.Mapped))
		}
		return t.Manager.ReadMappedValue(ctx, opts.Mod, opts.Mapped)
	}

	path, err := t.Manager.Path(opts.Mod)
	if err != nil {
		return "", err
	}
	data, err := t.Manager.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	typ := opts.Type
	if typ == "" {
		typ = cfg.TypeString
	}
	value, ok, err := cfg.GetValue(data, opts.Key, typ)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &cfg.MissingFieldError{Key: opts.Key, Path: path}
	}
	return value, nil
}
