// Package main is the entry point for the curator CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	rt := cli.NewRuntime(app.New)
	defer func() {
		err = errors.Join(err, rt.Close())
	}()

	rootCmd := cli.NewRootCommand(rt, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
