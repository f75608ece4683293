package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc stops a running fetch before it means anything else
		if ctx.Loading() {
			return []types.Action{types.StopAction{}}, true
		}
		return []types.Action{types.BackAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.PageAction{Forward: false}}, true

	case tea.KeyPgDown:
		return []types.Action{types.PageAction{Forward: true}}, true

	case tea.KeyLeft, tea.KeyBackspace:
		return []types.Action{types.BackAction{}}, true

	case tea.KeyRight, tea.KeyEnter:
		if ctx.ViewingDocument() || ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ActivateAction{}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "l":
		if ctx.ViewingDocument() || ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ActivateAction{}}, true

	case "b":
		return []types.Action{types.BackAction{}}, true

	case "n", " ":
		return []types.Action{types.PageAction{Forward: true}}, true

	case "p":
		return []types.Action{types.PageAction{Forward: false}}, true

	case "H":
		return []types.Action{types.HomeAction{}}, true

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "s":
		return []types.Action{types.StopAction{}}, true

	case "g", ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case "G":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case "h":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHistory}}, true

	case "v":
		if ctx.ViewingDocument() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
