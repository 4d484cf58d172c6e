package main

import (
	"context"
	"errors"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	origExecute := executeCmd
	defer func() { executeCmd = origExecute }()

	executeCmd = func(ctx context.Context, args []string) error {
		return nil
	}

	if code := run([]string{"version"}); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestRunError(t *testing.T) {
	origExecute := executeCmd
	origMap := mapExitCode
	defer func() {
		executeCmd = origExecute
		mapExitCode = origMap
	}()

	executeCmd = func(ctx context.Context, args []string) error {
		return errors.New("boom")
	}
	mapExitCode = func(err error) int {
		return 7
	}

	if code := run([]string{"sites", "list"}); code != 7 {
		t.Errorf("Expected exit code 7, got %d", code)
	}
}

func TestRunPassesArgs(t *testing.T) {
	origExecute := executeCmd
	defer func() { executeCmd = origExecute }()

	var got []string
	executeCmd = func(ctx context.Context, args []string) error {
		got = args
		return nil
	}

	run([]string{"sites", "get", "42"})
	if len(got) != 3 || got[0] != "sites" {
		t.Errorf("Expected args to be forwarded, got %v", got)
	}
}
