package ui

import "github.com/zhubert/dinechat/internal/logger"

// Layout holds the screen geometry for one frame. Build it with NewLayout
// whenever the terminal size or the visible overlays change.
type Layout struct {
	// Terminal dimensions, clamped to the minimums
	Width  int
	Height int

	// Panel box between header and footer (and above the composer)
	BodyHeight int

	// Composer overlay height, zero when closed
	ComposerHeight int

	// Search bar height inside the panel box, zero unless searching is possible
	SearchHeight int
}

// NewLayout computes the layout for a terminal of the given size.
func NewLayout(width, height int, composerOpen, searchBar bool) Layout {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	l := Layout{Width: width, Height: height}
	if composerOpen {
		l.ComposerHeight = ComposerHeight
	}
	if searchBar {
		l.SearchHeight = SearchBarHeight
	}
	l.BodyHeight = height - HeaderHeight - FooterHeight - l.ComposerHeight

	logger.ComponentLogger("ui").Debug("layout computed",
		"width", width,
		"height", height,
		"bodyHeight", l.BodyHeight,
		"composerHeight", l.ComposerHeight,
		"searchHeight", l.SearchHeight,
	)
	return l
}

// InnerWidth is the usable width inside the bordered panel box.
func (l Layout) InnerWidth() int {
	return l.Width - BorderSize
}

// ContentHeight is the number of lines for rows or history inside the panel
// box, below its title and search bar.
func (l Layout) ContentHeight() int {
	h := l.BodyHeight - BorderSize - TitleHeight - l.SearchHeight
	if h < 1 {
		return 1
	}
	return h
}

// InputWidth is the width of a text input inside a bordered, padded box.
func (l Layout) InputWidth() int {
	w := l.InnerWidth() - BorderSize - InputPaddingWidth
	if w < 1 {
		return 1
	}
	return w
}
