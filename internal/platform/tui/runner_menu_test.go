package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func setupStep(t *testing.T, m RunnerSetupModel, keys ...string) RunnerSetupModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(RunnerSetupModel)
	}
	return m
}

func TestRunnerSetupCharacter(t *testing.T) {
	m := NewRunnerSetupModel("Neon Run", 80, 24)
	if !strings.Contains(m.View(), "Cube") {
		t.Error("the cube should be picked by default")
	}

	m = setupStep(t, m, "w", "d", "d")
	if !strings.Contains(m.View(), "Pyramid") {
		t.Errorf("view should show the pyramid:\n%s", m.View())
	}
	m = setupStep(t, m, "s", "enter")

	got := m.Selected()
	if got == nil {
		t.Fatal("enter on Start run should choose")
	}
	want := runner.Options{Biome: "cybercity", Difficulty: "normal", Character: "pyramid"}
	if *got != want {
		t.Errorf("Selected() = %+v, want %+v", *got, want)
	}
}

func TestRunnerSetupCyclesWrap(t *testing.T) {
	m := NewRunnerSetupModel("Neon Run", 80, 24)
	m = setupStep(t, m, "w", "left", "s", "enter")
	if got := m.Selected(); got == nil || got.Character != "neon" {
		t.Errorf("left from the first character should wrap to the last, got %+v", got)
	}

	m = setupStep(t, NewRunnerSetupModel("Neon Run", 80, 24), "esc")
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should back out without options")
	}
}
