package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/infra/editor"
)

// DefaultEmail is prefilled in the email field; "noko" keeps the poster in
// the thread after posting.
const DefaultEmail = "noko"

const commentLimit = 2000

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// DoneMsg is sent when composing is complete (submit or cancel).
type DoneMsg struct {
	Submission domain.Submission
	ThreadNo   uint64 // 0 for a new thread
	Cancelled  bool
	Err        error
}

// IsReply reports whether the submission targets an existing thread.
func (d DoneMsg) IsReply() bool { return d.ThreadNo != 0 }

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// form fields in focus order. fieldSubject is skipped for replies.
const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldImage
	fieldComment
	fieldCount
)

// Model holds the state for the compose view.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	threadNo uint64
	status   string
	err      error

	inputs   [fieldComment]textinput.Model // Only used in inline mode
	textarea textarea.Model                // Only used in inline mode
	focus    int
	quote    string // Initial comment, e.g. ">>123"
}

// NewEditor creates a compose model that opens $EDITOR via tea.Exec.
// threadNo is 0 for a new thread; quote seeds the comment.
func NewEditor(ed *editor.EnvEditor, threadNo uint64, quote string) Model {
	return Model{
		mode:     editorMode,
		editor:   ed,
		threadNo: threadNo,
		status:   "Opening editor...",
		quote:    quote,
	}
}

// NewInline creates a compose model with an inline form.
func NewInline(threadNo uint64, quote string) Model {
	m := Model{
		mode:     inlineMode,
		threadNo: threadNo,
		quote:    quote,
		focus:    fieldComment,
	}

	placeholders := [fieldComment]string{
		fieldName:    "Anonymous",
		fieldEmail:   "",
		fieldSubject: "Subject",
		fieldImage:   "/path/to/image.png",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Width = 60
		m.inputs[i] = ti
	}
	m.inputs[fieldEmail].SetValue(DefaultEmail)

	ta := textarea.New()
	ta.Placeholder = "Comment"
	ta.CharLimit = commentLimit
	ta.SetWidth(72)
	ta.SetHeight(6)
	if quote != "" {
		ta.SetValue(quote + "\n")
	}
	ta.Focus()
	m.textarea = ta
	return m
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor prepares the editor command and uses tea.Exec to properly
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.seed(), m.heading())
	if err != nil {
		return done(DoneMsg{ThreadNo: m.threadNo, Err: fmt.Errorf("preparing editor: %w", err)})
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

func (m Model) seed() string {
	if m.quote == "" {
		return ""
	}
	return m.quote + "\n"
}

func (m Model) heading() string {
	if m.threadNo == 0 {
		return "New thread"
	}
	return fmt.Sprintf("Reply to No. %d", m.threadNo)
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{ThreadNo: m.threadNo, Err: fmt.Errorf("editor: %w", msg.err)})
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{ThreadNo: m.threadNo, Err: err})
		}
		if content == "" || content == strings.TrimSpace(m.quote) {
			return m, done(DoneMsg{ThreadNo: m.threadNo, Cancelled: true})
		}
		sub := domain.Submission{Email: DefaultEmail, Comment: content}
		if err := sub.Validate(); err != nil {
			return m, done(DoneMsg{ThreadNo: m.threadNo, Err: err})
		}
		return m, done(DoneMsg{ThreadNo: m.threadNo, Submission: sub})

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{ThreadNo: m.threadNo, Cancelled: true})

		case "ctrl+d":
			sub := m.submission()
			if err := sub.Validate(); err != nil {
				m.err = err
				return m, nil
			}
			return m, done(DoneMsg{ThreadNo: m.threadNo, Submission: sub})

		case "tab":
			return m, m.moveFocus(1)

		case "shift+tab":
			return m, m.moveFocus(-1)
		}

		m.err = nil
		return m.updateFocused(msg)
	}

	if m.mode == inlineMode {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldComment {
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(step int) tea.Cmd {
	next := m.focus
	for {
		next = ((next+step)%fieldCount + fieldCount) % fieldCount
		if next != fieldSubject || m.threadNo == 0 {
			break
		}
	}

	if m.focus == fieldComment {
		m.textarea.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if next == fieldComment {
		return m.textarea.Focus()
	}
	return m.inputs[next].Focus()
}

func (m Model) submission() domain.Submission {
	sub := domain.Submission{
		Name:      strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:     strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Comment:   strings.TrimSpace(m.textarea.Value()),
		ImagePath: strings.TrimSpace(m.inputs[fieldImage].Value()),
	}
	if m.threadNo == 0 {
		sub.Subject = strings.TrimSpace(m.inputs[fieldSubject].Value())
	}
	return sub
}

// ErrorText renders a validation error for the form.
func ErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyPost):
		return "A comment or an image is required."
	case errors.Is(err, domain.ErrUnsupportedImage):
		return "Images must be png, jpeg, jpg, gif or webm."
	default:
		return err.Error()
	}
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
