package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/tui/board"
	"github.com/alice-ws/aliceterm/tui/compose"
	"github.com/alice-ws/aliceterm/tui/render"
)

type stubBoard struct {
	postErr  error
	replies  []uint64
	newPosts int
}

func (*stubBoard) FetchThreads(context.Context) ([]domain.Thread, error) {
	return []domain.Thread{{Post: domain.Post{No: 1}}}, nil
}

func (*stubBoard) FetchThread(_ context.Context, no uint64) (domain.Thread, error) {
	return domain.Thread{Post: domain.Post{No: no}}, nil
}

func (s *stubBoard) PostThread(context.Context, domain.Submission) error {
	s.newPosts++
	return s.postErr
}

func (s *stubBoard) PostReply(_ context.Context, no uint64, _ domain.Submission) error {
	s.replies = append(s.replies, no)
	return s.postErr
}

func newTestApp(svc *stubBoard, threadNo uint64) App {
	return NewApp(Deps{
		Board:    svc,
		Render:   render.Options{Board: "test", ImageContext: "/img/"},
		ThreadNo: threadNo,
	})
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	out, ok := m.(App)
	if !ok {
		t.Fatalf("unexpected model type %T", m)
	}
	return out, cmd
}

func TestNewApp_MountsThreadWhenRequested(t *testing.T) {
	a := newTestApp(&stubBoard{}, 42)
	if a.board.Kind() != board.KindThread || a.board.ThreadNo() != 42 {
		t.Fatalf("expected thread 42, got %v %d", a.board.Kind(), a.board.ThreadNo())
	}
	if a := newTestApp(&stubBoard{}, 0); a.board.Kind() != board.KindListing {
		t.Fatalf("expected listing by default")
	}
}

func TestOpenThread_RemountsAndDropsOldResults(t *testing.T) {
	a := newTestApp(&stubBoard{}, 0)
	first := a.board.MountID()

	a, _ = update(t, a, board.OpenThreadMsg{No: 9})
	if a.board.Kind() != board.KindThread || a.board.MountID() == first {
		t.Fatalf("expected new thread mount, got %v mount %d", a.board.Kind(), a.board.MountID())
	}

	a, _ = update(t, a, board.ListingLoadedMsg{MountID: first, ReqSeq: 1, Threads: []domain.Thread{{Post: domain.Post{No: 1}}}})
	if a.board.Status() != board.StatusLoading {
		t.Fatalf("result for the torn-down listing must be dropped")
	}
}

func TestSubmittedReply_ReloadsThread(t *testing.T) {
	svc := &stubBoard{}
	a := newTestApp(svc, 5)
	before := a.board.MountID()

	a, cmd := update(t, a, compose.DoneMsg{ThreadNo: 5, Submission: domain.Submission{Comment: "hi"}})
	if cmd == nil || a.status != "Posting..." {
		t.Fatalf("expected submit command, status %q", a.status)
	}
	a, _ = update(t, a, cmd())
	if len(svc.replies) != 1 || svc.replies[0] != 5 {
		t.Fatalf("expected reply to 5, got %v", svc.replies)
	}
	if a.board.MountID() == before || a.board.Kind() != board.KindThread || a.board.ThreadNo() != 5 {
		t.Fatalf("expected thread 5 to be mounted again")
	}
	if a.status != "Reply posted!" {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestSubmittedThread_ReloadsListing(t *testing.T) {
	svc := &stubBoard{}
	a := newTestApp(svc, 0)
	a, cmd := update(t, a, compose.DoneMsg{Submission: domain.Submission{Comment: "op"}})
	a, _ = update(t, a, cmd())
	if svc.newPosts != 1 || a.board.Kind() != board.KindListing {
		t.Fatalf("expected listing reload after new thread")
	}
}

func TestSubmittedFailure_KeepsViewAndShowsError(t *testing.T) {
	svc := &stubBoard{postErr: domain.ErrSubmissionRejected}
	a := newTestApp(svc, 5)
	before := a.board.MountID()

	a, cmd := update(t, a, compose.DoneMsg{ThreadNo: 5, Submission: domain.Submission{Comment: "hi"}})
	a, _ = update(t, a, cmd())
	if a.board.MountID() != before {
		t.Fatalf("failed submission must not reload")
	}
	if !strings.Contains(a.View(), "Error:") {
		t.Fatalf("error must be shown in status bar:\n%s", a.View())
	}
}

func TestComposeCancelled(t *testing.T) {
	a := newTestApp(&stubBoard{}, 0)
	a.active = composeView
	a, cmd := update(t, a, compose.DoneMsg{Cancelled: true})
	if cmd != nil || a.active != boardView || a.status != "Cancelled." {
		t.Fatalf("cancel must return to the board: active %v status %q", a.active, a.status)
	}
}

func TestComposeError(t *testing.T) {
	a := newTestApp(&stubBoard{}, 0)
	a, _ = update(t, a, compose.DoneMsg{Err: errors.New("editor crashed")})
	if !strings.Contains(a.status, "editor crashed") {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestReplyInlineKey_OpensReplyForm(t *testing.T) {
	a := newTestApp(&stubBoard{}, 5)
	a, _ = update(t, a, board.ThreadLoadedMsg{MountID: a.board.MountID(), ReqSeq: 1, Thread: domain.Thread{Post: domain.Post{No: 5}}})
	if a.board.Status() != board.StatusSuccess {
		t.Fatalf("thread not loaded")
	}

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'C'}})
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}
	if !strings.Contains(a.View(), "Reply to No. 5") {
		t.Fatalf("expected reply heading:\n%s", a.View())
	}
}

func TestLoadResultWhileComposing_ReachesBoard(t *testing.T) {
	a := newTestApp(&stubBoard{}, 5)
	a.active = composeView
	a.compose = compose.NewInline(5, "")

	a, _ = update(t, a, board.ThreadLoadedMsg{MountID: a.board.MountID(), ReqSeq: 1, Thread: domain.Thread{Post: domain.Post{No: 5}}})
	if a.board.Status() != board.StatusSuccess {
		t.Fatalf("load result must reach the board while composing")
	}
}
