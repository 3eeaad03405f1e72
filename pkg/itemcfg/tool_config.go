package itemcfg

import (
	"context"
	"fmt"
)

// Config returns the effective settings as YAML, preceded by a comment
// naming the settings file.
func (t *Tool) Config(ctx context.Context) (string, error) {
	data, err := t.Settings.YAML()
	if err != nil {
		return "", fmt.Errorf("unable to render settings: %w", err)
	}
	return fmt.Sprintf("# %s\n%s", t.SettingsPath, data), nil
}
