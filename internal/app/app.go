package app

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dinechat/internal/api"
	"github.com/zhubert/dinechat/internal/config"
	"github.com/zhubert/dinechat/internal/keys"
	"github.com/zhubert/dinechat/internal/panel"
	"github.com/zhubert/dinechat/internal/ui"
)

// Backend is the messaging backend. *api.Client satisfies it; tests use a fake.
type Backend interface {
	Conversations(ctx context.Context, customerID int64) (api.ConversationList, error)
	Conversation(ctx context.Context, friendID int64) (api.ConversationDetail, error)
	FriendRequests(ctx context.Context, customerID int64) ([]api.FriendRequest, error)
	AcceptFriend(ctx context.Context, friendshipID int64) (api.AcceptResult, error)
	SearchCustomer(ctx context.Context, username string) (api.SearchResult, error)
	AddFriend(ctx context.Context, customerID, friendID int64) (string, error)
	SendMessage(ctx context.Context, req api.SendRequest) (api.SendResult, error)
	Avatar(ctx context.Context, customerID int64) (string, error)
}

// PanelResultMsg delivers a backend result to the panel state machine.
type PanelResultMsg struct {
	Event panel.Event
}

// searchButtonWidth reserves room for the widest search button label.
const searchButtonWidth = len(panel.LabelSearching) + 3

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	backend Backend

	header *ui.Header
	footer *ui.Footer
	modal  *ui.Modal

	state   panel.State
	pending []panel.Effect // initial effects, run by Init

	search        textinput.Model
	searchFocused bool
	composer      textarea.Model
	history       viewport.Model

	width         int
	height        int
	layout        ui.Layout
	windowFocused bool
}

// New creates a new app model for the configured customer.
func New(cfg *config.Config, backend Backend, version string) *Model {
	state, effects := panel.New(cfg.GetCustomerID())

	search := textinput.New()
	search.Placeholder = "Username"
	search.CharLimit = ui.SearchCharLimit
	search.Prompt = "> "

	composer := textarea.New()
	composer.Placeholder = "Write a reply..."
	composer.CharLimit = ui.ReplyCharLimit
	composer.SetHeight(ui.ComposerTextareaHeight)
	composer.ShowLineNumbers = false
	composer.Prompt = ""
	// Enter sends; these insert a newline instead
	composer.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(keys.CtrlJ, keys.ShiftEnter))

	history := viewport.New()
	history.MouseWheelEnabled = true
	history.MouseWheelDelta = 3

	header := ui.NewHeader()
	header.SetAccount(cfg.GetCustomerID())

	return &Model{
		config:        cfg,
		version:       version,
		backend:       backend,
		header:        header,
		footer:        ui.NewFooter(),
		modal:         ui.NewModal(),
		state:         state,
		pending:       effects,
		search:        search,
		composer:      composer,
		history:       history,
		windowFocused: true,
	}
}

// Init runs the initial conversation list fetch.
func (m *Model) Init() tea.Cmd {
	effects := m.pending
	m.pending = nil
	return m.runEffects(effects)
}

// State returns the current panel state.
func (m *Model) State() panel.State {
	return m.state
}
