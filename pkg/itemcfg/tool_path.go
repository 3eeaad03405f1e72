package itemcfg

import "context"

type PathOptions struct {
	Mod string
}

// Path returns the cfg file path of a mod.
func (t *Tool) Path(ctx context.Context, opts PathOptions) (string, error) {
	return t.Manager.Path(opts.Mod)
}

// Dir returns the directory holding the cfg file of a mod.
func (t *Tool) Dir(ctx context.Context, opts PathOptions) (string, error) {
	return t.Manager.Dir(opts.Mod)
}
