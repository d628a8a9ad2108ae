package board

import (
	"context"
	"fmt"

	"github.com/alice-ws/aliceterm/domain"
	"github.com/alice-ws/aliceterm/tui/render"
)

type stubBoard struct {
	threads []domain.Thread
	thread  domain.Thread
	err     error
}

func (s stubBoard) FetchThreads(context.Context) ([]domain.Thread, error) {
	return s.threads, s.err
}

func (s stubBoard) FetchThread(context.Context, uint64) (domain.Thread, error) {
	return s.thread, s.err
}

func (stubBoard) PostThread(context.Context, domain.Submission) error { return nil }

func (stubBoard) PostReply(context.Context, uint64, domain.Submission) error { return nil }

func testRender() render.Options {
	return render.Options{
		ImageContext:   "/img/",
		Board:          "test",
		ObjectionAsset: "objection.gif",
		Roller:         render.RollerFunc(func() int { return 2 }),
	}
}

func newThreadModel(svc stubBoard, no uint64, limit int) Model {
	return New(svc, Options{
		Kind:       KindThread,
		ThreadNo:   no,
		ReplyLimit: limit,
		MountID:    1,
		Render:     testRender(),
	})
}

func newListingModel(svc stubBoard) Model {
	return New(svc, Options{Kind: KindListing, MountID: 1, Render: testRender()})
}

// makeThread builds a thread rooted at root with replies root+1..root+n.
func makeThread(root uint64, n int) domain.Thread {
	t := domain.Thread{Post: domain.Post{No: root, Comment: fmt.Sprintf("root %d", root)}}
	for i := 1; i <= n; i++ {
		t.Replies = append(t.Replies, domain.Post{
			No:      root + uint64(i),
			Comment: fmt.Sprintf("reply %d", i),
		})
	}
	return t
}
