// Package main is the entry point for the cptgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/cptgen/internal/cmd"
	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// The command layer may have reported it already.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		exit(oerrors.ExitCodeFromError(err))
	}
}

func exit(code int) {
	output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
	os.Exit(code)
}
