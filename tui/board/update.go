package board

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/tui/render"
)

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.status != StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.syncViewport()
		return m, nil

	case ListingLoadedMsg:
		if !m.accepts(msg.MountID, msg.ReqSeq) {
			m.logger.Debug("dropping stale listing",
				zap.Uint64("mount", msg.MountID), zap.Int("seq", msg.ReqSeq))
			return m, nil
		}
		m.applyListing(msg.Threads)
		return m, m.ensureThumbnailCmd()

	case ThreadLoadedMsg:
		if !m.accepts(msg.MountID, msg.ReqSeq) {
			m.logger.Debug("dropping stale thread",
				zap.Uint64("mount", msg.MountID), zap.Int("seq", msg.ReqSeq),
				zap.Uint64("no", msg.Thread.Post.No))
			return m, nil
		}
		m.applyThread(msg.Thread)
		return m, m.ensureThumbnailCmd()

	case LoadFailedMsg:
		if !m.accepts(msg.MountID, msg.ReqSeq) {
			return m, nil
		}
		m.applyFailure(msg.Err)
		return m, nil

	case ThumbnailLoadedMsg:
		delete(m.thumbLoading, msg.URL)
		if msg.Err != nil {
			m.logger.Debug("thumbnail failed", zap.String("url", msg.URL), zap.Error(msg.Err))
		}
		m.thumbs[msg.URL] = msg.Preview
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.Reload()

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.refCursor >= 0 {
			m.refCursor = -1
			m.syncViewport()
			return m, nil
		}
		if m.kind == KindThread {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, nil
	}

	if m.status != StatusSuccess {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refCursor = -1
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.postCount()-1 {
			m.cursor++
			m.refCursor = -1
		}
	case key.Matches(msg, m.keys.NextRef):
		m.cycleRef(1)
	case key.Matches(msg, m.keys.PrevRef):
		m.cycleRef(-1)
	case key.Matches(msg, m.keys.Open):
		if m.kind == KindListing {
			if no, ok := m.SelectedThreadNo(); ok {
				return m, func() tea.Msg { return OpenThreadMsg{No: no} }
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleImage):
		m.showImage = !m.showImage
		m.syncViewport()
		return m, m.ensureThumbnailCmd()
	default:
		return m, nil
	}

	m.syncViewport()
	return m, m.ensureThumbnailCmd()
}

// cycleRef moves the open preview through the selected post's backlinks,
// wrapping through "none".
func (m *Model) cycleRef(step int) {
	pv, ok := m.SelectedPost()
	if !ok || len(pv.Refs) == 0 {
		m.refCursor = -1
		return
	}
	n := len(pv.Refs) + 1 // slot n is "no preview"
	cur := m.refCursor
	if cur < 0 {
		cur = len(pv.Refs)
	}
	cur = ((cur+step)%n + n) % n
	if cur == len(pv.Refs) {
		cur = -1
	}
	m.refCursor = cur
}

func (m *Model) applyListing(threads []domain.Thread) {
	summary := domain.BoardSummary(threads)
	m.threads = summary
	m.omitted = make([]int, len(summary))
	m.listViews = make([]render.ThreadView, len(summary))
	for i, t := range summary {
		m.omitted[i] = len(threads[i].Replies) - len(t.Replies)
		m.listViews[i] = m.renderer.RenderThread(t, domain.BuildIndex(t))
	}
	m.status = StatusSuccess
	m.err = nil
	m.clampCursor()
	m.syncViewport()
}

func (m *Model) applyThread(t domain.Thread) {
	windowed := t.LastReplies(m.replyLimit)
	m.thread = windowed
	m.index = domain.BuildIndex(windowed)
	m.view = m.renderer.RenderThread(windowed, m.index)
	m.status = StatusSuccess
	m.err = nil
	m.clampCursor()
	m.syncViewport()
}

// applyFailure drops whatever was displayed; the view shows the placeholder
// until a later load succeeds.
func (m *Model) applyFailure(err error) {
	m.logger.Warn("load failed",
		zap.Stringer("kind", m.kind),
		zap.Uint64("no", m.threadNo),
		zap.Uint64("mount", m.mountID),
		zap.Error(err))
	m.status = StatusFailure
	m.err = err
	m.threads = nil
	m.omitted = nil
	m.listViews = nil
	m.thread = domain.Thread{}
	m.index = domain.Index{}
	m.view = render.ThreadView{}
	m.cursor = 0
	m.refCursor = -1
	m.syncViewport()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.postCount() {
		m.cursor = 0
	}
	m.refCursor = -1
}
