package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B294BB")).
			Padding(1, 2, 0, 1)

	// BoardStyle styles the board name shown next to the title.
	BoardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// SubjectStyle styles a thread subject.
	SubjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EE99A0")).
			Bold(true)

	// NameStyle styles the poster name.
	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6DA95"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// PostNoStyle styles "No. 123" and permalinks.
	PostNoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8AADF4"))

	// ContentStyle styles comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// QuoteStyle styles greentext lines.
	QuoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#789922"))

	// QuoteLinkStyle styles >>123 lines and backlinks.
	QuoteLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D00000")).
			Underline(true)

	// MissingRefStyle styles a backlink whose post is not in the displayed thread.
	MissingRefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Strikethrough(true)

	// ActiveRefStyle highlights the backlink whose preview is open.
	ActiveRefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D00000")).
			Bold(true)

	// ObjectionStyle styles the objection artifact banner.
	ObjectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C0392B")).
			Bold(true).
			Italic(true).
			Padding(0, 1)

	// RollStyle styles a dice roll result.
	RollStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F")).
			Bold(true)

	// MetadataStyle styles image names and other secondary text.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8E8E")).
			Faint(true)

	// SelectedStyle highlights the currently selected post.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#B294BB")).
			Padding(0, 1)

	// UnselectedStyle gives unselected posts a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// PreviewStyle frames a hover preview.
	PreviewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#D00000")).
			Padding(0, 1).
			MarginLeft(2)

	// PlaceholderStyle styles the loading marker.
	PlaceholderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 2)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)

// ClassStyles maps segment style classes to terminal styles. Unknown classes
// fall back to ContentStyle.
var ClassStyles = map[string]lipgloss.Style{
	"quote":     QuoteStyle,
	"noQuote":   QuoteLinkStyle,
	"bold":      lipgloss.NewStyle().Bold(true),
	"italic":    lipgloss.NewStyle().Italic(true),
	"underline": lipgloss.NewStyle().Underline(true),
	"spoiler":   lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#000000")),
}
