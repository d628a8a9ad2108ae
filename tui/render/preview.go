package render

import "github.com/alice-ws/aliceterm/domain"

// Mode controls whether a rendered post expands its backlinks into previews.
type Mode int

const (
	// ExpandReferences attaches a hover preview to every backlink.
	ExpandReferences Mode = iota
	// SuppressReferences lists backlinks without previews.
	SuppressReferences
)

// Options configures a Renderer.
type Options struct {
	ImageContext   string
	Board          string
	ObjectionAsset string // Image name, resolved against ImageContext
	Roller         Roller
}

// Renderer renders posts of a single displayed thread.
type Renderer struct {
	format       Formatter
	imageContext string
	board        string
}

// NewRenderer creates a renderer from explicit options.
func NewRenderer(opts Options) Renderer {
	objection, _ := ResolveImageURL(opts.ImageContext, opts.ObjectionAsset)
	return Renderer{
		format:       NewFormatter(objection, opts.Roller),
		imageContext: opts.ImageContext,
		board:        opts.Board,
	}
}

// RenderPost renders header, image and comment of p. Backlinks are resolved
// against ix; in ExpandReferences mode each one carries a preview.
func (r Renderer) RenderPost(p domain.Post, ix domain.Index, mode Mode) PostView {
	pv := PostView{
		No:        p.No,
		Name:      p.Name,
		Timestamp: p.Timestamp,
		Permalink: Permalink(r.board, p.No),
		Body:      r.format.Format(p),
	}
	if u, ok := ResolveImageURL(r.imageContext, p.Image); ok {
		pv.Image = &Image{URL: u, Filename: p.Filename}
	}

	refs := Resolve(p, ix)
	if len(refs) > 0 {
		pv.Refs = make([]RefView, 0, len(refs))
	}
	for _, ref := range refs {
		rv := RefView{No: ref.No, Found: ref.Found}
		if mode == ExpandReferences {
			rv.Preview = r.RenderPreview(ref, ix)
		}
		pv.Refs = append(pv.Refs, rv)
	}
	return pv
}

// RenderPreview renders the hover preview for a resolved backlink. Missing
// targets yield a Placeholder. The target is rendered with references
// suppressed, so previews never nest.
func (r Renderer) RenderPreview(ref Reference, ix domain.Index) Node {
	if !ref.Found {
		return Placeholder{}
	}
	return r.RenderPost(ref.Post, ix, SuppressReferences)
}

// ThreadView is a rendered thread: root post plus replies in order.
type ThreadView struct {
	Root    PostView
	Replies []PostView
}

// RenderThread renders every post of t with references expanded. ix must be
// built from t.
func (r Renderer) RenderThread(t domain.Thread, ix domain.Index) ThreadView {
	root := r.RenderPost(t.Post, ix, ExpandReferences)
	root.Subject = t.Subject
	tv := ThreadView{Root: root, Replies: make([]PostView, 0, len(t.Replies))}
	for _, p := range t.Replies {
		tv.Replies = append(tv.Replies, r.RenderPost(p, ix, ExpandReferences))
	}
	return tv
}
