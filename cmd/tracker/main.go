// Command tracker is a personal learning-progress tracker: it records
// learning items, logs daily activity and derives a streak.
//
// Usage:
//
//	tracker item add --title "Graphs" --category dsa --status "in progress"
//	tracker activity quick "solved two BFS problems"
//	tracker dashboard
//
// Storage, timezone and logging are configured via config.yaml or env
// (see internal/config). Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
