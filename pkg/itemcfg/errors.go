package itemcfg

import (
	"errors"
	"fmt"
)

var (
	// ErrCfgExists indicates create would overwrite an existing cfg file.
	ErrCfgExists = errors.New("itemcfg: cfg already exists")

	// ErrUnknownMappedKey indicates a mapped key name not in the table.
	ErrUnknownMappedKey = errors.New("itemcfg: unknown mapped key")
)

// CfgExistsError carries the path that would have been overwritten.
type CfgExistsError struct {
	Path string
}

func (e *CfgExistsError) Error() string {
	return fmt.Sprintf("%s already exists (use --force to overwrite)", e.Path)
}

func (e *CfgExistsError) Is(target error) bool { return target == ErrCfgExists }

func (e *CfgExistsError) Unwrap() error { return ErrCfgExists }
