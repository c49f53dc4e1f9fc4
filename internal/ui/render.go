package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dinechat/internal/api"
	"github.com/zhubert/dinechat/internal/panel"
)

// SearchHint is shown on the add-friend panel before the first search.
const SearchHint = "Search for a customer by username."

// avatarMark stands in for an avatar picture.
func avatarMark(url string) string {
	if url == "" || url == api.DefaultAvatar {
		return "◯"
	}
	return "◉"
}

// button renders a per-row action control.
func button(a *panel.Action) string {
	if a == nil {
		return ""
	}
	if a.Disabled {
		return ButtonDisabledStyle.Render(a.Label)
	}
	return ButtonStyle.Render(a.Label)
}

// fit lays out left and right on one line of the given width, truncating
// left when both do not fit.
func fit(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	avail := width - rw
	if right != "" {
		avail--
	}
	if avail < 0 {
		avail = 0
	}
	if ansi.StringWidth(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	}
	gap := width - ansi.StringWidth(left) - rw
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// StatusText returns the styled error, loading, empty or not-found line for
// v, or "" when rows should be shown instead.
func StatusText(v panel.View) string {
	switch {
	case v.Error != "":
		return StatusErrorStyle.Render(v.Error)
	case len(v.Rows) > 0:
		return ""
	case v.Loading:
		return StatusLoadingStyle.Render(panel.LoadingText)
	case v.Empty != "":
		return StatusEmptyStyle.Render(v.Empty)
	case v.Search != nil && v.Search.NotFound != "":
		return StatusEmptyStyle.Render(v.Search.NotFound)
	case v.Search != nil && !v.Search.Disabled:
		return StatusEmptyStyle.Render(SearchHint)
	}
	return ""
}

func renderRow(r panel.Row, width int) []string {
	cursor := "  "
	titleStyle := lipgloss.NewStyle().Foreground(ColorText)
	if r.Selected {
		cursor = FooterKeyStyle.Render("›") + " "
		titleStyle = titleStyle.Bold(true)
	}
	left := cursor + AvatarStyle.Render(avatarMark(r.Avatar)) + " " + titleStyle.Render(r.Title)
	if r.Meta != "" {
		left += "  " + RowMetaStyle.Render(r.Meta)
	}
	lines := []string{fit(left, button(r.Action), width)}
	if r.Body != "" {
		lines = append(lines, "    "+RowBodyStyle.Render(ansi.Truncate(r.Body, max(width-4, 1), "…")))
	}
	return lines
}

// RenderRows renders the list panels: status text and rows, scrolled so the
// selected row stays within height lines.
func RenderRows(v panel.View, width, height int) string {
	var lines []string
	if s := StatusText(v); s != "" {
		lines = append(lines, s)
	}

	selStart, selEnd := -1, -1
	for _, r := range v.Rows {
		rl := renderRow(r, width)
		if r.Selected {
			selStart, selEnd = len(lines), len(lines)+len(rl)
		}
		lines = append(lines, rl...)
	}

	if height > 0 && len(lines) > height {
		offset := 0
		if selEnd > height {
			offset = selEnd - height
		}
		if selStart >= 0 && offset > selStart {
			offset = selStart
		}
		lines = lines[offset:min(offset+height, len(lines))]
	}
	return strings.Join(lines, "\n")
}

// RenderHistory renders a conversation for the history viewport.
func RenderHistory(v panel.View, width int) string {
	var b strings.Builder
	if s := StatusText(v); s != "" {
		b.WriteString(s)
		if len(v.Rows) == 0 {
			return b.String()
		}
		b.WriteString("\n\n")
	}

	bodyStyle := MessageBodyStyle.Width(max(width, 1)).PaddingLeft(2)
	for i, r := range v.Rows {
		nameStyle := MessageFriendStyle
		if r.Mine {
			nameStyle = MessageMineStyle
		}
		header := AvatarStyle.Render(avatarMark(r.Avatar)) + " " + nameStyle.Render(r.Title)
		if r.Meta != "" {
			header += "  " + RowMetaStyle.Render(r.Meta)
		}
		b.WriteString(ansi.Truncate(header, width, "…"))
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(r.Body))
		if i < len(v.Rows)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// RenderSearchBar renders the search box around the input's own view.
func RenderSearchBar(sv *panel.SearchView, input string, focused bool, width int) string {
	style := InputStyle
	if focused {
		style = InputFocusedStyle
	}
	inner := max(width-BorderSize-InputPaddingWidth, 1)
	btn := button(&panel.Action{Label: sv.Label, Disabled: sv.Disabled})
	return style.Render(fit(input, btn, inner))
}

// RenderComposer renders the reply overlay around the textarea's own view.
func RenderComposer(cv *panel.ComposerView, input string, width int) string {
	inner := max(width-BorderSize-InputPaddingWidth, 1)
	title := ComposerTitleStyle.Render("Reply to "+cv.To) + "  " +
		AvatarStyle.Render(avatarMark(cv.Avatar)+" you")
	btn := button(&panel.Action{Label: cv.Label, Disabled: cv.Disabled})
	body := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(title, inner, "…"),
		input,
		fit("", btn, inner),
	)
	return InputFocusedStyle.Render(body)
}

// RenderPanel draws the bordered panel box of exactly width x height with
// title on its first line and content below, clipped to fit.
func RenderPanel(title string, loading bool, content string, width, height int) string {
	inner := max(width-BorderSize, 1)
	innerH := max(height-BorderSize, 1)

	t := PanelTitleStyle.Render(title)
	if loading {
		t += StatusLoadingStyle.Render(panel.LoadingText)
	}
	lines := []string{ansi.Truncate(t, inner, "…")}
	if content != "" {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, inner, "")
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}
