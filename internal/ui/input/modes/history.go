package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/types"
)

// HistoryMode drives the session history overlay
type HistoryMode struct{}

func NewHistoryMode() *HistoryMode {
	return &HistoryMode{}
}

func (m *HistoryMode) Name() string {
	return "history"
}

func (m *HistoryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HistoryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HistoryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "h", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "enter":
		return []types.Action{
			types.HistoryJumpAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Swallow everything else while the overlay is open
	return nil, true
}
