package render

import "time"

// formatTimestamp shows RFC 3339 server timestamps in the board's usual
// "01/02/06(Mon)15:04:05" form and passes anything else through.
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("01/02/06(Mon)15:04:05")
}
