package types

import "burrow/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction turns the engine's page of the current listing or document
type PageAction struct {
	Forward bool
}

func (a PageAction) Type() string { return "page" }

type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type HomeAction struct{}

func (a HomeAction) Type() string { return "home" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type StopAction struct{}

func (a StopAction) Type() string { return "stop" }

// OpenPagerAction shows the whole document in the external pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// HistoryJumpAction re-activates the history frame at the cursor
type HistoryJumpAction struct{}

func (a HistoryJumpAction) Type() string { return "history_jump" }

// SubmitEntryAction opens an entry built from the address form
type SubmitEntryAction struct {
	Entry domain.DirectoryEntry
}

func (a SubmitEntryAction) Type() string { return "submit_entry" }

// FormErrorAction reports a field the address form could not accept
type FormErrorAction struct {
	Message string
}

func (a FormErrorAction) Type() string { return "form_error" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
