package domain

// Index maps post numbers to posts for exactly one thread.
// It is rebuilt for every loaded thread snapshot and never updated in place.
type Index struct {
	threadNo uint64
	posts    map[uint64]Post
}

// BuildIndex indexes the root post and every reply of t.
func BuildIndex(t Thread) Index {
	posts := make(map[uint64]Post, len(t.Replies)+1)
	posts[t.Post.No] = t.Post
	for _, r := range t.Replies {
		posts[r.No] = r
	}
	return Index{threadNo: t.Post.No, posts: posts}
}

// Lookup returns the post numbered no, or false when it is not part of the
// indexed thread. The zero Index finds nothing.
func (ix Index) Lookup(no uint64) (Post, bool) {
	p, ok := ix.posts[no]
	return p, ok
}

// ThreadNo returns the root post number of the indexed thread.
func (ix Index) ThreadNo() uint64 {
	return ix.threadNo
}

// Len returns the number of indexed posts.
func (ix Index) Len() int {
	return len(ix.posts)
}
