package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alice-ws/aliceterm/tui/common"
)

// Text renders a node sequence for the terminal, wrapped to width.
// Placeholders and PostViews inside the sequence render as nothing here;
// previews are drawn by Preview.
func Text(nodes []Node, width int) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case PlainText:
			b.WriteString(common.ContentStyle.Width(width).Render(n.Text))
		case StyledText:
			b.WriteString(classStyle(n.Classes).Width(width).Render(n.Text))
			b.WriteString("\n")
		case EmbeddedObjection:
			b.WriteString(common.ObjectionStyle.Render("OBJECTION!"))
			if n.Asset != "" {
				b.WriteString(" " + common.MetadataStyle.Render(n.Asset))
			}
			b.WriteString("\n")
		case DiceRoll:
			b.WriteString(common.RollStyle.Render(fmt.Sprintf("🎲 %d", n.Value)))
			b.WriteString("\n")
		}
	}
	return clampLinesToWidth(strings.TrimRight(b.String(), "\n"), width)
}

func classStyle(classes []string) lipgloss.Style {
	style := common.ContentStyle
	for _, c := range classes {
		if s, ok := common.ClassStyles[c]; ok {
			style = style.Inherit(s)
		}
	}
	return style
}

// Header renders "Subject Name Timestamp No. 123".
func Header(pv PostView) string {
	parts := make([]string, 0, 4)
	if pv.Subject != "" {
		parts = append(parts, common.SubjectStyle.Render(pv.Subject))
	}
	name := pv.Name
	if strings.TrimSpace(name) == "" {
		name = "Anonymous"
	}
	parts = append(parts, common.NameStyle.Render(name))
	if pv.Timestamp != "" {
		parts = append(parts, common.TimestampStyle.Render(formatTimestamp(pv.Timestamp)))
	}
	parts = append(parts, common.PostNoStyle.Render(fmt.Sprintf("No. %d", pv.No)))
	return strings.Join(parts, " ")
}

// Backlinks renders the ">>N" markers of a post. active is the index of the
// reference whose preview is open, or -1.
func Backlinks(refs []RefView, active int) string {
	if len(refs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(refs))
	for i, ref := range refs {
		label := fmt.Sprintf(">>%d", ref.No)
		switch {
		case i == active:
			parts = append(parts, common.ActiveRefStyle.Render(label))
		case !ref.Found:
			parts = append(parts, common.MissingRefStyle.Render(label))
		default:
			parts = append(parts, common.QuoteLinkStyle.Render(label))
		}
	}
	return common.MetadataStyle.Render("Replies: ") + strings.Join(parts, " ")
}

// Preview renders a hover preview node. A Placeholder renders as an empty
// string.
func Preview(n Node, width int) string {
	pv, ok := n.(PostView)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header(pv) + "\n")
	if pv.Image != nil {
		b.WriteString(common.MetadataStyle.Render(imageLabel(*pv.Image)) + "\n")
	}
	b.WriteString(Text(pv.Body, max(width-6, 12)))
	if refs := Backlinks(pv.Refs, -1); refs != "" {
		b.WriteString("\n" + refs)
	}
	return common.PreviewStyle.Width(width).Render(b.String())
}

func imageLabel(img Image) string {
	name := img.Filename
	if name == "" {
		name = img.URL
	}
	return "File: " + name
}

// ImageLabel renders the file line shown above an image.
func ImageLabel(img Image) string {
	return common.MetadataStyle.Render(imageLabel(img))
}

func clampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
