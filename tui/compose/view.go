package compose

import (
	"fmt"
	"strings"

	"github.com/alice-ws/aliceterm/tui/common"
)

var fieldLabels = [fieldComment]string{
	fieldName:    "Name",
	fieldEmail:   "Email",
	fieldSubject: "Subject",
	fieldImage:   "Image",
}

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("aliceterm"))
		b.WriteString("  " + m.heading() + "\n\n")

		for i, in := range m.inputs {
			if i == fieldSubject && m.threadNo != 0 {
				continue
			}
			label := fmt.Sprintf("%-8s", fieldLabels[i])
			if i == m.focus {
				label = common.QuoteLinkStyle.Render(label)
			} else {
				label = common.MetadataStyle.Render(label)
			}
			b.WriteString(label + " " + in.View() + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n")

		if m.err != nil {
			b.WriteString(common.ErrorStyle.Render(ErrorText(m.err)) + "\n")
		}
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: post • tab: next field • esc: cancel • %d/%d chars",
				len(m.textarea.Value()), commentLimit),
		))
		return b.String()
	}

	return ""
}
