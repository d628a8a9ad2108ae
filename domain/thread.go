package domain

const (
	// BoardThreadLimit is how many threads a board listing shows.
	BoardThreadLimit = 10
	// BoardReplyWindow is how many trailing replies each listed thread shows.
	BoardReplyWindow = 5
)

// Thread is a root post plus its replies in chronological order.
type Thread struct {
	Post    Post   `json:"post"`
	Subject string `json:"subject,omitempty"`
	Replies []Post `json:"replies"`
}

// Posts returns the root followed by every reply.
func (t Thread) Posts() []Post {
	out := make([]Post, 0, len(t.Replies)+1)
	out = append(out, t.Post)
	return append(out, t.Replies...)
}

// LastReplies returns a copy of the thread keeping only the most recent n
// replies. n <= 0 keeps all of them. The receiver's reply slice is never
// shared with the result.
func (t Thread) LastReplies(n int) Thread {
	replies := t.Replies
	if n > 0 && len(replies) > n {
		replies = replies[len(replies)-n:]
	}
	out := t
	out.Replies = append([]Post(nil), replies...)
	return out
}

// BoardSummary reduces a listing payload to what a board page shows: the
// first BoardThreadLimit threads, each with its last BoardReplyWindow replies.
func BoardSummary(threads []Thread) []Thread {
	n := min(len(threads), BoardThreadLimit)
	out := make([]Thread, 0, n)
	for _, t := range threads[:n] {
		out = append(out, t.LastReplies(BoardReplyWindow))
	}
	return out
}
