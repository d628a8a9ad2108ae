package app

import (
	"context"

	"github.com/alice-ws/aliceterm/domain"
)

// BoardService reads and writes threads on an imageboard API.
type BoardService interface {
	// FetchThreads returns every thread on the board, in server order.
	FetchThreads(ctx context.Context) ([]domain.Thread, error)

	// FetchThread returns a single thread by its root post number.
	FetchThread(ctx context.Context, no uint64) (domain.Thread, error)

	// PostThread starts a new thread.
	PostThread(ctx context.Context, sub domain.Submission) error

	// PostReply adds a reply to the thread rooted at threadNo.
	PostReply(ctx context.Context, threadNo uint64, sub domain.Submission) error
}
