package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/mods"
)

func renderUserError(err error, deps *Deps) string {
	if err == nil {
		return ""
	}

	var modErr *mods.ModNotFoundError
	if errors.As(err, &modErr) {
		if isDebugLogLevel(deps) || modErr.Dir == "" {
			return modErr.Error()
		}
		return fmt.Sprintf("mod %q not found", modErr.Name)
	}

	var missing *cfg.MissingFieldError
	if errors.As(err, &missing) {
		return missing.Error()
	}

	return err.Error()
}

func isDebugLogLevel(deps *Deps) bool {
	if deps == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(deps.LogLevel), "debug")
}
