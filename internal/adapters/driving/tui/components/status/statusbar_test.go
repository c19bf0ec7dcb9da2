package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotEmpty(t, bar.hints)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		count   int
		want    string
	}{
		{"ready", StateReady, "", 0, "Ready"},
		{"ready with message", StateReady, "Loaded", 0, "Loaded"},
		{"busy default", StateBusy, "", 0, "Working..."},
		{"busy message", StateBusy, "Searching...", 0, "Searching..."},
		{"error", StateError, "boom", 0, "Error: boom"},
		{"error no message", StateError, "", 0, "Error"},
		{"done", StateDone, "Stored asset 4", 0, "Stored asset 4"},
		{"one result", StateResults, "", 1, "1 result"},
		{"results", StateResults, "", 3, "3 results"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetResultCount(tt.count)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "enter: search")

	bar.SetHints(km.AssetHelp())
	assert.Contains(t, bar.View(), "next tab")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("x")
	bar.SetResultCount(2)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}
