package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

// TestApp_WithOptions verifies functional options are applied.
func TestApp_WithOptions(t *testing.T) {
	config := &Config{Verbose: true, Format: "json"}
	logger := zerolog.Nop()

	app, err := New("dev", "none", "today", "test",
		WithConfig(config),
		WithLogger(&logger),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Config() != config {
		t.Error("WithConfig() was not applied")
	}
	if app.Logger() != &logger {
		t.Error("WithLogger() was not applied")
	}
}

// TestApp_Execute verifies command dispatch through the root command.
func TestApp_Execute(t *testing.T) {
	app, err := New("dev", "none", "today", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := app.Execute(context.Background(), []string{"version"}); err != nil {
		t.Errorf("Execute(version) failed: %v", err)
	}

	if err := app.Execute(context.Background(), []string{"no-such-command"}); err == nil {
		t.Error("Execute(no-such-command) succeeded, want error")
	}

	if err := app.Execute(context.Background(), []string{"version", "--format", "csv"}); err == nil {
		t.Error("Execute with unknown --format succeeded, want error")
	}
}

// TestRootCommandFlagDefaults verifies the global flags default to the
// loaded configuration instead of resetting it.
func TestRootCommandFlagDefaults(t *testing.T) {
	t.Setenv("VERBOSE", "true")

	app, err := New("dev", "none", "today", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	flag := root.PersistentFlags().Lookup("verbose")
	if flag == nil {
		t.Fatal("verbose flag not registered")
	}
	if flag.DefValue != "true" {
		t.Errorf("verbose flag default = %q, want true from env", flag.DefValue)
	}
	if !app.Config().Verbose {
		t.Error("Verbose reset while binding flags")
	}
}

// TestContextWithSignals verifies signal contexts cancel cleanly.
func TestContextWithSignals(t *testing.T) {
	ctx, cancel := ContextWithSignals(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithSignals() returned nil context")
	}
	cancel()

	select {
	case <-ctx.Done():
	default:
		t.Error("context not cancelled after cancel()")
	}
}

// TestContext verifies the convenience wrapper.
func TestContext(t *testing.T) {
	ctx, cancel := Context()
	defer cancel()
	if ctx == nil {
		t.Fatal("Context() returned nil context")
	}
	if ctx.Err() != nil {
		t.Errorf("fresh context already done: %v", ctx.Err())
	}
}
