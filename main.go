package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"grimm.is/linkprobe/cmd"
)

func main() {
	// Agents kill overdue checks; a cancelled context stops probing early.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Run(ctx, cmd.DefaultEnv(), os.Args)
	stop()
	os.Exit(code)
}
