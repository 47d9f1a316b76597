// Package main is the entry point for the hrdeploy CLI.
//
// hrdeploy provisions the AWS infrastructure for the HR application:
// a security group, an encrypted backup bucket, a web server instance,
// and a managed MySQL database, in that fixed order.
//
// For detailed usage information, run:
//
//	hrdeploy --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/imamik/hrdeploy/cmd/hrdeploy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Best-effort: a .env file may carry the required environment
	// variables during local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
