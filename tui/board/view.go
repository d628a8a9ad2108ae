package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alice-ws/aliceterm/tui/common"
	"github.com/alice-ws/aliceterm/tui/render"
)

// loadingMarker is shown while content is not available, whether the load
// is still running or has failed.
const loadingMarker = ". . ."

// chromeHeight is the header plus footer around the viewport.
const chromeHeight = 5

// View renders the board view.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.status != StatusSuccess {
		b.WriteString(m.renderPlaceholder())
	} else {
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := common.AppTitleStyle.Render("aliceterm")
	board := common.BoardStyle.Render("/" + strings.Trim(m.board, "/") + "/")
	if m.kind == KindThread {
		return title + " " + board + " " +
			common.PostNoStyle.Render(render.Permalink(m.board, m.threadNo))
	}
	return title + " " + board
}

func (m Model) renderPlaceholder() string {
	marker := loadingMarker
	if m.status == StatusLoading {
		marker = m.spinner.View() + " " + loadingMarker
	}
	return common.PlaceholderStyle.Render(marker)
}

func (m Model) renderFooter() string {
	if !m.showHints {
		return common.StatusBarStyle.Render("?: hints")
	}
	hints := m.keys.Hints()
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		if !h.Enabled() {
			continue
		}
		parts = append(parts, keyHelp(h))
	}
	return common.StatusBarStyle.Render(strings.Join(parts, " • "))
}

func keyHelp(b key.Binding) string {
	help := b.Help()
	return help.Key + ": " + help.Desc
}

// syncViewport re-renders the body into the viewport and scrolls the
// selected post into view.
func (m *Model) syncViewport() {
	body, start, end := m.renderBody()
	m.viewport.SetContent(body)
	if start < m.viewport.YOffset {
		m.viewport.SetYOffset(start)
	} else if end > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(max(end-m.viewport.Height, start))
	}
}

// renderBody returns the scrollable content together with the first and
// last line of the selected post.
func (m Model) renderBody() (string, int, int) {
	if m.status != StatusSuccess {
		return "", 0, 0
	}
	width := max(m.width-2, 24)

	var blocks []string
	start, end := 0, 0
	lines := 0
	add := func(s string, selected bool) {
		h := lipgloss.Height(s)
		if selected {
			start, end = lines, lines+h
		}
		blocks = append(blocks, s)
		lines += h
	}

	if m.kind == KindListing {
		if len(m.listViews) == 0 {
			add(common.MetadataStyle.Render("No threads yet."), false)
		}
		for i, tv := range m.listViews {
			selected := i == m.cursor
			add(m.renderCard(tv.Root, width, selected), selected)
			if m.omitted[i] > 0 {
				add(common.MetadataStyle.Render(fmt.Sprintf("  %d replies omitted.", m.omitted[i])), false)
			}
			for _, r := range tv.Replies {
				add(lipgloss.NewStyle().MarginLeft(4).Render(m.renderCard(r, width-4, false)), false)
			}
		}
		return strings.Join(blocks, "\n"), start, end
	}

	add(m.renderCard(m.view.Root, width, m.cursor == 0), m.cursor == 0)
	for i, r := range m.view.Replies {
		selected := m.cursor == i+1
		add(lipgloss.NewStyle().MarginLeft(2).Render(m.renderCard(r, width-2, selected)), selected)
	}
	return strings.Join(blocks, "\n"), start, end
}

// renderCard draws one post. The selected post shows its open preview and,
// when enabled, its image thumbnail.
func (m Model) renderCard(pv render.PostView, width int, selected bool) string {
	inner := max(width-4, 12)

	var b strings.Builder
	b.WriteString(render.Header(pv))
	b.WriteString(" " + common.MetadataStyle.Render(pv.Permalink))
	if pv.Image != nil {
		b.WriteString("\n" + render.ImageLabel(*pv.Image))
		if selected && m.showImage {
			if thumb := m.thumbs[pv.Image.URL]; thumb != "" {
				b.WriteString("\n" + thumb)
			} else if m.thumbLoading[pv.Image.URL] {
				b.WriteString("\n" + common.MetadataStyle.Render("loading image..."))
			}
		}
	}
	if body := render.Text(pv.Body, inner); strings.TrimSpace(body) != "" {
		b.WriteString("\n" + body)
	}

	active := -1
	if selected {
		active = m.refCursor
	}
	if refs := render.Backlinks(pv.Refs, active); refs != "" {
		b.WriteString("\n" + refs)
	}

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	card := style.Width(width).Render(b.String())

	if selected && active >= 0 && active < len(pv.Refs) {
		if preview := render.Preview(pv.Refs[active].Preview, max(width-4, 16)); preview != "" {
			card += "\n" + preview
		}
	}
	return card
}
