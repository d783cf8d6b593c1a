// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/cli"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/logger"
	verpkg "github.com/H0llyW00dzZ/express-crud-scaffold/src/version"
)

var version string // set by ldflags or defaults to imported version

// cleanupTimeout bounds how long main waits for a cancelled run to roll back.
var cleanupTimeout = 5 * time.Second

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Cancel on SIGINT/SIGTERM; the generator stops between files and removes what it wrote
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := runCLI(ctx, log, os.Stderr, func(ctx context.Context) error {
		return cli.Execute(ctx, version, log)
	})

	stop()
	os.Exit(code)
}

// runCLI runs execute in its own goroutine and turns its result into an exit
// code. When ctx is cancelled first it waits up to cleanupTimeout for execute
// to return, so a rollback in progress is not cut short.
func runCLI(ctx context.Context, log logger.Logger, stderr io.Writer, execute func(context.Context) error) int {
	done := make(chan error, 1)

	go func() {
		done <- execute(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		log.Println("Received termination signal, waiting for cleanup...")
		select {
		case err = <-done:
		case <-time.After(cleanupTimeout):
			err = fmt.Errorf("cleanup did not finish within %s: %w", cleanupTimeout, ctx.Err())
		}
	}

	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
