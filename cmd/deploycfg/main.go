package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/deploycfg/internal/cli"
	"github.com/trebuchet-org/deploycfg/internal/config"
)

// Set by -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := cli.Execute(context.Background(), rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
