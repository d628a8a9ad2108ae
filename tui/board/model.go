// Package board is the thread and board view: it loads a listing or a single
// thread, windows it, renders it once per load and lets the user walk posts
// and their quote previews.
package board

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/alice-ws/aliceterm/app"
	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/tui/common"
	"github.com/alice-ws/aliceterm/tui/render"
)

const loadTimeout = 20 * time.Second

// Kind selects what a board model displays.
type Kind int

const (
	KindListing Kind = iota
	KindThread
)

func (k Kind) String() string {
	if k == KindThread {
		return "thread"
	}
	return "listing"
}

// Status is the load state of the view.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	// StatusFailure covers transport errors and FAILURE responses alike. It
	// renders the same placeholder as StatusLoading.
	StatusFailure
)

// --- Messages ---

// ListingLoadedMsg carries a board listing for one mount and request.
type ListingLoadedMsg struct {
	MountID uint64
	ReqSeq  int
	Threads []domain.Thread
}

// ThreadLoadedMsg carries a single thread for one mount and request.
type ThreadLoadedMsg struct {
	MountID uint64
	ReqSeq  int
	Thread  domain.Thread
}

// LoadFailedMsg reports a failed listing or thread load.
type LoadFailedMsg struct {
	MountID uint64
	ReqSeq  int
	Err     error
}

// OpenThreadMsg asks the root to mount the thread view for No.
type OpenThreadMsg struct {
	No uint64
}

// BackMsg asks the root to return to the board listing.
type BackMsg struct{}

// --- Model ---

// Options configures a board model. MountID identifies this mount; results
// addressed to any other mount are ignored.
type Options struct {
	Kind       Kind
	ThreadNo   uint64
	ReplyLimit int // Thread view only, 0 for all
	MountID    uint64
	Render     render.Options
	Logger     *zap.Logger
}

// Model holds the state of a board listing or thread view.
type Model struct {
	svc      app.BoardService
	renderer render.Renderer
	logger   *zap.Logger
	board    string

	kind       Kind
	threadNo   uint64
	replyLimit int
	mountID    uint64
	reqSeq     int

	status Status
	err    error

	// Listing state: windowed threads, their indexes and rendered views.
	threads   []domain.Thread
	omitted   []int
	listViews []render.ThreadView

	// Thread state.
	thread domain.Thread
	index  domain.Index
	view   render.ThreadView

	cursor    int // Listing: thread. Thread view: post, 0 is the root.
	refCursor int // Open preview on the selected post, -1 for none
	showHints bool

	showImage    bool
	thumbs       map[string]string
	thumbLoading map[string]bool

	keys     common.KeyMap
	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

// New creates a board model with injected dependencies.
func New(svc app.BoardService, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#D00000"))

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.ReplyLimit
	if limit < 0 {
		limit = 0
	}

	return Model{
		svc:          svc,
		renderer:     render.NewRenderer(opts.Render),
		logger:       logger,
		board:        opts.Render.Board,
		kind:         opts.Kind,
		threadNo:     opts.ThreadNo,
		replyLimit:   limit,
		mountID:      opts.MountID,
		reqSeq:       1,
		status:       StatusLoading,
		refCursor:    -1,
		thumbs:       make(map[string]string),
		thumbLoading: make(map[string]bool),
		keys:         common.DefaultKeyMap(),
		spinner:      s,
		viewport:     viewport.New(80, 20),
		width:        80,
		height:       24,
	}
}

// Init starts the single load for this mount.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// Reload issues a new load. Results of earlier loads of this mount are
// dropped once it is issued.
func (m Model) Reload() (Model, tea.Cmd) {
	m.reqSeq++
	m.status = StatusLoading
	m.err = nil
	return m, tea.Batch(m.load(), m.spinner.Tick)
}

func (m Model) load() tea.Cmd {
	svc := m.svc
	kind := m.kind
	no := m.threadNo
	mountID := m.mountID
	seq := m.reqSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		if kind == KindThread {
			t, err := svc.FetchThread(ctx, no)
			if err != nil {
				return LoadFailedMsg{MountID: mountID, ReqSeq: seq, Err: err}
			}
			return ThreadLoadedMsg{MountID: mountID, ReqSeq: seq, Thread: t}
		}
		threads, err := svc.FetchThreads(ctx)
		if err != nil {
			return LoadFailedMsg{MountID: mountID, ReqSeq: seq, Err: err}
		}
		return ListingLoadedMsg{MountID: mountID, ReqSeq: seq, Threads: threads}
	}
}

// accepts reports whether a load result belongs to the current request of
// this mount.
func (m Model) accepts(mountID uint64, seq int) bool {
	return mountID == m.mountID && seq == m.reqSeq
}

// Kind returns what this model displays.
func (m Model) Kind() Kind { return m.kind }

// ThreadNo returns the displayed thread number (thread view only).
func (m Model) ThreadNo() uint64 { return m.threadNo }

// MountID returns the mount this model belongs to.
func (m Model) MountID() uint64 { return m.mountID }

// Status returns the current load state.
func (m Model) Status() Status { return m.status }

// Err returns the last load error, if any.
func (m Model) Err() error { return m.err }

// Index returns the post index of the displayed thread. It is empty until a
// thread has loaded.
func (m Model) Index() domain.Index { return m.index }

// Thread returns the windowed thread (thread view only).
func (m Model) Thread() domain.Thread { return m.thread }

// Threads returns the windowed listing (listing only).
func (m Model) Threads() []domain.Thread { return m.threads }

// SelectedThreadNo returns the thread under the cursor: the listed thread
// in the listing, the displayed thread otherwise.
func (m Model) SelectedThreadNo() (uint64, bool) {
	if m.kind == KindThread {
		return m.threadNo, m.status == StatusSuccess
	}
	if m.status != StatusSuccess || m.cursor < 0 || m.cursor >= len(m.threads) {
		return 0, false
	}
	return m.threads[m.cursor].Post.No, true
}

// SelectedPost returns the rendered post under the cursor.
func (m Model) SelectedPost() (render.PostView, bool) {
	if m.status != StatusSuccess {
		return render.PostView{}, false
	}
	if m.kind == KindListing {
		if m.cursor < 0 || m.cursor >= len(m.listViews) {
			return render.PostView{}, false
		}
		return m.listViews[m.cursor].Root, true
	}
	if m.cursor == 0 {
		return m.view.Root, true
	}
	if i := m.cursor - 1; i >= 0 && i < len(m.view.Replies) {
		return m.view.Replies[i], true
	}
	return render.PostView{}, false
}

func (m Model) postCount() int {
	if m.kind == KindListing {
		return len(m.listViews)
	}
	if m.status != StatusSuccess {
		return 0
	}
	return 1 + len(m.view.Replies)
}
