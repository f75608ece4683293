package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/modes"
	"burrow/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 1024

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeGoTo] = modes.NewGoToMode(h.textInput)
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeHistory] = modes.NewHistoryMode()
	h.modes[types.ModeForm] = modes.NewFormMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// In a text mode an unhandled key goes to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	if h.isTextMode(mode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
	} else {
		h.textInput.Blur()
	}
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
		if p, ok := next.(interface{ Prefill(string) }); ok && data != "" {
			p.Prefill(data)
		}
	}
	return actions
}

// ChangeMode switches mode outside of key handling, e.g. when the engine asks for a query
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) tea.Cmd {
	h.switchMode(mode, data, ctx)
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Prompt returns the label of the current text mode, or "" outside text modes
func (h *Handler) Prompt() string {
	if m, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return m.Prompt()
	}
	return ""
}

// Form renders the address form while it is open, or "" otherwise
func (h *Handler) Form() string {
	if f, ok := h.modes[h.currentMode].(*modes.FormMode); ok {
		return f.View()
	}
	return ""
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeGoTo, types.ModeQuery:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
