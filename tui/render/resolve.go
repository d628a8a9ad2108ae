package render

import "github.com/alice-ws/aliceterm/domain"

// Reference is one resolved backlink. Found is false when the quoting post is
// not in the displayed thread.
type Reference struct {
	No    uint64
	Post  domain.Post
	Found bool
}

// Resolve looks up every post listed in p.QuotedBy, in order.
func Resolve(p domain.Post, ix domain.Index) []Reference {
	if len(p.QuotedBy) == 0 {
		return nil
	}
	out := make([]Reference, 0, len(p.QuotedBy))
	for _, no := range p.QuotedBy {
		target, ok := ix.Lookup(no)
		out = append(out, Reference{No: no, Post: target, Found: ok})
	}
	return out
}
