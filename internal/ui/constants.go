package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// SearchBarHeight is the search input plus its border
	SearchBarHeight = 3

	// ComposerTextareaHeight is the number of lines for the reply textarea
	ComposerTextareaHeight = 3

	// ComposerHeight is the composer overlay: title, textarea, button row, borders
	ComposerHeight = ComposerTextareaHeight + 2 + BorderSize

	// InputPaddingWidth is the horizontal padding inside input boxes (Padding(0, 1))
	InputPaddingWidth = 2

	// MinTerminalWidth and MinTerminalHeight clamp tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Modal sizes
const (
	// ModalWidth is the content width of the help modal
	ModalWidth = 56

	// HelpModalMaxVisible is the number of help rows shown at once
	HelpModalMaxVisible = 14
)

// Input limits
const (
	// SearchCharLimit bounds a username query
	SearchCharLimit = 64

	// ReplyCharLimit bounds a reply
	ReplyCharLimit = 2000
)
