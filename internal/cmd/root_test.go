package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestUnknownCommand(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	err := Execute(context.Background(), []string{"bogus"})
	if err == nil {
		t.Fatal("Expected error for unknown command")
	}
	if ExitCode(err) != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, ExitCode(err))
	}
}

func TestRootHelp(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("--help failed: %v", err)
		}
	})

	for _, want := range []string{"sites", "equipment", "accounts", "auth", "version"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q: %s", want, output)
		}
	}
}

func TestJQFilterApplied(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/site/42/overview.json", jsonResponse(200, `{
			"overview": {
				"lifeTimeData": {"energy": 761000.5},
				"currentPower": {"power": 3500.0}
			}
		}`))
	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"sites", "overview", "42", "--jq", ".currentPower.power"})
		if err != nil {
			t.Errorf("sites overview failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "3500" {
		t.Errorf("Expected filtered output 3500, got %q", output)
	}
}

func TestFlagsResetBetweenExecutions(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/site/42/overview.json", jsonResponse(200, `{"overview": {"currentPower": {"power": 1.0}}}`))
	setupTestEnvWithHandler(t, handler)

	_ = captureStdout(t, func() {
		_ = Execute(context.Background(), []string{"sites", "overview", "42", "--jq", ".currentPower"})
	})
	output := captureStdout(t, func() {
		_ = Execute(context.Background(), []string{"sites", "overview", "42"})
	})

	// The second run must not inherit the first run's --jq.
	if !strings.Contains(output, "overview") && !strings.Contains(output, "currentPower") {
		t.Errorf("Expected unfiltered output, got %q", output)
	}
	if flags.JQ != "" {
		t.Errorf("Expected JQ flag reset, got %q", flags.JQ)
	}
}
