package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithSize is implemented by modal states that size themselves to the screen.
type ModalWithSize interface {
	SetSize(width, height int)
}

// Modal represents a popup dialog drawn over the panels.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on a screen of the given size
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}
	if sized, ok := m.State.(ModalWithSize); ok {
		// Border and padding take 6 columns and 4 rows
		sized.SetSize(min(ModalWidth, screenWidth-6), min(HelpModalMaxVisible+4, screenHeight-4))
	}

	modal := ModalStyle.Render(m.State.Render())
	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
