package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself; callers use tea.ExecProcess with the
// returned *exec.Cmd so Bubble Tea suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const cutLine = "-------- >8 --------"

const instructionTemplate = `# %s
#
# Write your comment below the cut line.
#   >text     greentext
#   >>123     quote post No. 123
# Save and exit to post. An empty comment or no changes cancels.
` + cutLine + "\n"

// Cmd writes the instruction header and initial content to a temp file and
// returns the editor command for it. heading describes what is being written,
// e.g. "Reply to No. 42".
func (e *EnvEditor) Cmd(content, heading string) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}
	if strings.TrimSpace(heading) == "" {
		heading = "New post"
	}

	tmpFile, err := os.CreateTemp("", "aliceterm-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(fmt.Sprintf(instructionTemplate, heading) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	cmd := exec.Command(editorCmd, tmpPath)
	return cmd, tmpPath, nil
}

// ReadContent reads the temp file, removes it, and returns the text after the
// cut line with surrounding whitespace trimmed.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if _, after, ok := strings.Cut(content, cutLine); ok {
		content = after
	}
	return strings.TrimSpace(content), nil
}
