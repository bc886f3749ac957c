package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals returns a child of parent that is cancelled on
// SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Context is ContextWithSignals over a background context.
func Context() (context.Context, context.CancelFunc) {
	return ContextWithSignals(context.Background())
}
