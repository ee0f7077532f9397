package main

import (
	"os"

	"github.com/chazuruo/clean-history/internal/cli"
	cherrors "github.com/chazuruo/clean-history/internal/errors"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(cli.VersionInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}, cli.DefaultDeps())

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cherrors.ExitCode(err))
	}
}
