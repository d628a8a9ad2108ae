package editor

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestCmd_UsesEditorAndWritesTemplate(t *testing.T) {
	t.Setenv("EDITOR", "cat")
	e := NewEnvEditor()

	cmd, path, err := e.Cmd(">>42\n", "Reply to No. 42")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	if cmd.Path == "" || cmd.Args[0] != "cat" || cmd.Args[1] != path {
		t.Fatalf("unexpected command: %#v", cmd.Args)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "# Reply to No. 42") || !strings.HasSuffix(text, cutLine+"\n>>42\n") {
		t.Fatalf("unexpected template content: %q", text)
	}
}

func TestCmd_DefaultHeading(t *testing.T) {
	t.Setenv("EDITOR", "")
	e := NewEnvEditor()
	cmd, path, err := e.Cmd("", " ")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	if cmd.Args[0] != "vi" {
		t.Fatalf("expected vi fallback, got %q", cmd.Args[0])
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "# New post") {
		t.Fatalf("expected default heading: %q", data)
	}
}

func TestReadContent_StripsInstructionAndDeletesFile(t *testing.T) {
	e := NewEnvEditor()
	f, err := os.CreateTemp("", "aliceterm-test-*.txt")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	path := f.Name()
	_, _ = f.WriteString(fmt.Sprintf(instructionTemplate, "New thread") + "\n>be me\n>>7\n")
	_ = f.Close()

	content, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != ">be me\n>>7" {
		t.Fatalf("unexpected content: %q", content)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be deleted")
	}
}
