package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []core.Trigger
		want    core.GameState
		wantErr bool
	}{
		{"start", []core.Trigger{core.TriggerStart}, core.StatePlaying, false},
		{"caught then respawn", []core.Trigger{core.TriggerStart, core.TriggerCaught, core.TriggerRespawn}, core.StatePlaying, false},
		{"out of lives", []core.Trigger{core.TriggerStart, core.TriggerCaught, core.TriggerOutOfLives}, core.StateGameOver, false},
		{"level cycle", []core.Trigger{core.TriggerStart, core.TriggerLevelCleared, core.TriggerNextLevel}, core.StatePlaying, false},
		{"restart", []core.Trigger{core.TriggerStart, core.TriggerCaught, core.TriggerOutOfLives, core.TriggerRestart}, core.StateReady, false},
		{"caught in ready", []core.Trigger{core.TriggerCaught}, core.StateReady, true},
		{"restart while playing", []core.Trigger{core.TriggerStart, core.TriggerRestart}, core.StatePlaying, true},
		{"next level while playing", []core.Trigger{core.TriggerStart, core.TriggerNextLevel}, core.StatePlaying, true},
		{"respawn from level clear", []core.Trigger{core.TriggerStart, core.TriggerLevelCleared, core.TriggerRespawn}, core.StateLevelClear, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := core.NewMachine()
			var err error
			for _, trig := range tt.path {
				if _, err = m.Fire(trig); err != nil {
					break
				}
			}
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, core.ErrInvalidTransition) {
				t.Errorf("err = %v, want ErrInvalidTransition", err)
			}
			if m.State() != tt.want {
				t.Errorf("state = %v, want %v", m.State(), tt.want)
			}
		})
	}
}

func TestMachineTerminal(t *testing.T) {
	m := core.NewMachine()
	for _, trig := range []core.Trigger{core.TriggerStart, core.TriggerCaught, core.TriggerOutOfLives} {
		if !m.Can(trig) {
			t.Fatalf("Can(%v) = false in %v", trig, m.State())
		}
		if _, err := m.Fire(trig); err != nil {
			t.Fatal(err)
		}
	}
	if !m.Terminal() {
		t.Error("GameOver should be terminal")
	}
	for _, trig := range []core.Trigger{core.TriggerStart, core.TriggerCaught, core.TriggerRespawn, core.TriggerNextLevel} {
		if m.Can(trig) {
			t.Errorf("Can(%v) = true in GameOver", trig)
		}
	}
}
