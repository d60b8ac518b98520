package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fstkit/fstkit/internal/cli"
	"github.com/fstkit/fstkit/pkg/buildinfo"
	fsterrors "github.com/fstkit/fstkit/pkg/errors"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	err := cli.Execute()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps an error to the process exit code. A transduction failure
// is a normal outcome (the input has no mapping in the graph) and gets its
// own code so scripts can tell it apart from misuse and I/O errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	case fsterrors.IsSoft(err):
		return 2
	default:
		return 1
	}
}
