package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/alice-ws/aliceterm/app"
	"github.com/alice-ws/aliceterm/infra/editor"
	"github.com/alice-ws/aliceterm/tui/board"
	"github.com/alice-ws/aliceterm/tui/common"
	"github.com/alice-ws/aliceterm/tui/compose"
	"github.com/alice-ws/aliceterm/tui/render"
)

const submitTimeout = 30 * time.Second

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Board      app.BoardService
	Editor     *editor.EnvEditor
	Logger     *zap.Logger
	Render     render.Options
	ReplyLimit int
	ThreadNo   uint64 // Open this thread instead of the listing when non-zero
}

type activeView int

const (
	boardView activeView = iota
	composeView
)

// submittedMsg reports the outcome of a new thread or reply.
type submittedMsg struct {
	ThreadNo uint64
	Err      error
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps      Deps
	active    activeView
	board     board.Model
	compose   compose.Model
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Reply posted!")
	nextMount uint64
	size      tea.WindowSizeMsg
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	a := App{
		deps:   deps,
		active: boardView,
		keys:   common.DefaultKeyMap(),
	}
	if deps.ThreadNo != 0 {
		a.board = a.mountBoard(board.KindThread, deps.ThreadNo)
	} else {
		a.board = a.mountBoard(board.KindListing, 0)
	}
	return a
}

// Init starts the initial load.
func (a App) Init() tea.Cmd {
	return a.board.Init()
}

// mountBoard creates a board model under a fresh mount ID. Results still in
// flight for earlier mounts no longer match and are dropped.
func (a *App) mountBoard(kind board.Kind, no uint64) board.Model {
	a.nextMount++
	return board.New(a.deps.Board, board.Options{
		Kind:       kind,
		ThreadNo:   no,
		ReplyLimit: a.deps.ReplyLimit,
		MountID:    a.nextMount,
		Render:     a.deps.Render,
		Logger:     a.deps.Logger,
	})
}

// remount replaces the board view and starts its load.
func (a App) remount(kind board.Kind, no uint64) (App, tea.Cmd) {
	a.board = a.mountBoard(kind, no)
	cmds := []tea.Cmd{a.board.Init()}
	if a.size.Width > 0 {
		size := a.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return a, tea.Batch(cmds...)
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == boardView {
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			if cmd, ok := a.startCompose(msg); ok {
				return a, cmd
			}
			a.status = ""
		}

	case spinner.TickMsg, board.ListingLoadedMsg, board.ThreadLoadedMsg,
		board.LoadFailedMsg, board.ThumbnailLoadedMsg:
		// Board results keep flowing while the compose view is open.
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case board.OpenThreadMsg:
		a.status = ""
		return a.remount(board.KindThread, msg.No)

	case board.BackMsg:
		a.status = ""
		return a.remount(board.KindListing, 0)

	case compose.DoneMsg:
		a.active = boardView
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Cancelled {
			a.status = "Cancelled."
			return a, nil
		}
		a.status = "Posting..."
		return a, a.submit(msg)

	case submittedMsg:
		if msg.Err != nil {
			a.deps.Logger.Warn("submission failed", zap.Uint64("thread", msg.ThreadNo), zap.Error(msg.Err))
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		// No optimistic update: the affected view is mounted again from scratch.
		if msg.ThreadNo != 0 {
			a.status = "Reply posted!"
			return a.remount(board.KindThread, msg.ThreadNo)
		}
		a.status = "Thread posted!"
		return a.remount(board.KindListing, 0)
	}

	// Delegate to the active sub-model.
	switch a.active {
	case boardView:
		updated, cmd := a.board.Update(msg)
		a.board = updated
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}

	return a, nil
}

// startCompose opens the compose view for the new-thread and reply bindings.
func (a *App) startCompose(msg tea.KeyMsg) (tea.Cmd, bool) {
	var (
		threadNo uint64
		inline   bool
	)
	switch {
	case key.Matches(msg, a.keys.NewEditor):
	case key.Matches(msg, a.keys.NewInline):
		inline = true
	case key.Matches(msg, a.keys.Reply), key.Matches(msg, a.keys.ReplyInline):
		no, ok := a.board.SelectedThreadNo()
		if !ok {
			return nil, false
		}
		threadNo = no
		inline = key.Matches(msg, a.keys.ReplyInline)
	default:
		return nil, false
	}

	quote := ""
	if threadNo != 0 {
		if pv, ok := a.board.SelectedPost(); ok {
			quote = fmt.Sprintf(">>%d", pv.No)
		}
	}

	a.active = composeView
	a.status = ""
	if inline {
		a.compose = compose.NewInline(threadNo, quote)
	} else {
		a.compose = compose.NewEditor(a.deps.Editor, threadNo, quote)
	}
	return a.compose.Init(), true
}

func (a App) submit(msg compose.DoneMsg) tea.Cmd {
	svc := a.deps.Board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		var err error
		if msg.IsReply() {
			err = svc.PostReply(ctx, msg.ThreadNo, msg.Submission)
		} else {
			err = svc.PostThread(ctx, msg.Submission)
		}
		return submittedMsg{ThreadNo: msg.ThreadNo, Err: err}
	}
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case boardView:
		s = a.board.View()
	case composeView:
		s = a.compose.View()
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
