package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Version is stamped at build time.
var Version = "dev"

// Run executes the itemcfg command line against rt and returns the process
// exit code.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &Deps{Runtime: rt}
	defer func() {
		_ = deps.Close()
	}()
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)

	stream := rt.Stream()
	cmd.SetIn(stream.In)
	cmd.SetOut(stream.Out)
	cmd.SetErr(stream.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stream.Err, "error:", renderUserError(err, deps))
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
