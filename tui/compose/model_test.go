package compose

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/infra/editor"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func runDone(t *testing.T, cmd tea.Cmd) DoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(DoneMsg)
	if !ok {
		t.Fatalf("expected DoneMsg")
	}
	return msg
}

func TestInline_DefaultsAndQuote(t *testing.T) {
	m := NewInline(42, ">>42")
	if got := m.inputs[fieldEmail].Value(); got != DefaultEmail {
		t.Fatalf("email must default to %q, got %q", DefaultEmail, got)
	}
	if !strings.HasPrefix(m.textarea.Value(), ">>42") {
		t.Fatalf("comment must be seeded with the quote: %q", m.textarea.Value())
	}
}

func TestInline_SubmitReply(t *testing.T) {
	m := NewInline(42, "")
	m = typeText(m, "hello")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	msg := runDone(t, cmd)
	if msg.Err != nil || msg.Cancelled {
		t.Fatalf("unexpected result: %#v", msg)
	}
	if !msg.IsReply() || msg.ThreadNo != 42 {
		t.Fatalf("expected reply to 42, got %d", msg.ThreadNo)
	}
	if msg.Submission.Comment != "hello" || msg.Submission.Email != DefaultEmail {
		t.Fatalf("unexpected submission: %#v", msg.Submission)
	}
	if msg.Submission.Subject != "" {
		t.Fatalf("replies carry no subject")
	}
}

func TestInline_EmptyPostIsRejectedInPlace(t *testing.T) {
	m := NewInline(0, "")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd != nil {
		t.Fatalf("invalid form must not complete")
	}
	if !errors.Is(m.err, domain.ErrEmptyPost) {
		t.Fatalf("expected empty post error, got %v", m.err)
	}
	if !strings.Contains(m.View(), "A comment or an image is required.") {
		t.Fatalf("error must be shown:\n%s", m.View())
	}
}

func TestInline_FocusSkipsSubjectForReplies(t *testing.T) {
	m := NewInline(7, "")
	seen := map[int]bool{}
	for range fieldCount {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		seen[m.focus] = true
	}
	if seen[fieldSubject] {
		t.Fatalf("reply form must not focus the subject field")
	}

	m = NewInline(0, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab}) // comment -> name
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldSubject {
		t.Fatalf("thread form must reach the subject field, at %d", m.focus)
	}
	m = typeText(m, "topic")
	if got := m.submission().Subject; got != "topic" {
		t.Fatalf("subject not captured: %q", got)
	}
}

func TestInline_EscCancels(t *testing.T) {
	_, cmd := NewInline(0, "").Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg := runDone(t, cmd); !msg.Cancelled {
		t.Fatalf("esc must cancel")
	}
}

func TestEditor_FinishedReadsContent(t *testing.T) {
	ed := editor.NewEnvEditor()
	path := filepath.Join(t.TempDir(), "post.txt")
	if err := os.WriteFile(path, []byte("# header\n-------- >8 --------\n>>5\nnice\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	m := NewEditor(ed, 5, ">>5")
	_, cmd := m.Update(editorFinishedMsg{tmpPath: path})
	msg := runDone(t, cmd)
	if msg.Err != nil || msg.Cancelled {
		t.Fatalf("unexpected result: %#v", msg)
	}
	if msg.Submission.Comment != ">>5\nnice" || msg.Submission.Email != DefaultEmail {
		t.Fatalf("unexpected submission: %#v", msg.Submission)
	}
}

func TestEditor_UnchangedQuoteCancels(t *testing.T) {
	ed := editor.NewEnvEditor()
	path := filepath.Join(t.TempDir(), "post.txt")
	if err := os.WriteFile(path, []byte("-------- >8 --------\n>>5\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, cmd := NewEditor(ed, 5, ">>5").Update(editorFinishedMsg{tmpPath: path})
	if msg := runDone(t, cmd); !msg.Cancelled {
		t.Fatalf("unchanged content must cancel: %#v", msg)
	}
}

func TestEditor_ErrorIsReported(t *testing.T) {
	_, cmd := NewEditor(editor.NewEnvEditor(), 0, "").Update(editorFinishedMsg{err: errors.New("boom")})
	if msg := runDone(t, cmd); msg.Err == nil {
		t.Fatalf("editor failure must be reported")
	}
}
