//go:build !ebiten

package main

import (
	"errors"
	"testing"

	"gol2/internal/app"
)

func TestPlayRequiresGUIBuild(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)
	if _, err := execute(t, "play", "--config", cfgPath, "--seed", "1"); !errors.Is(err, app.ErrNoGUI) {
		t.Fatalf("expected ErrNoGUI, got %v", err)
	}
}
