package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/alice-ws/aliceterm/domain"
)

const statusFailure = "FAILURE"

// boardService implements app.BoardService using the board HTTP API.
type boardService struct {
	client  *Client
	threads singleflight.Group
}

// NewBoardService creates a BoardService backed by the board API.
func NewBoardService(client *Client) *boardService {
	return &boardService{client: client}
}

// threadEnvelope is the response shape of GET /thread. Successful responses
// may omit the status entirely.
type threadEnvelope struct {
	Status string         `json:"status"`
	Thread *domain.Thread `json:"thread"`
}

type statusEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s *boardService) FetchThreads(ctx context.Context) ([]domain.Thread, error) {
	data, err := s.client.Get(ctx, "/thread/all/")
	if err != nil {
		return nil, fmt.Errorf("fetching threads: %w", err)
	}

	var threads []domain.Thread
	if err := json.Unmarshal(data, &threads); err != nil {
		return nil, fmt.Errorf("parsing threads: %w", err)
	}
	return threads, nil
}

func (s *boardService) FetchThread(ctx context.Context, no uint64) (domain.Thread, error) {
	key := strconv.FormatUint(no, 10)
	// The shared request is bounded by the client timeout only; each caller
	// stops waiting when its own ctx ends.
	shared := context.WithoutCancel(ctx)
	ch := s.threads.DoChan(key, func() (any, error) {
		return s.fetchThread(shared, key)
	})
	select {
	case <-ctx.Done():
		return domain.Thread{}, fmt.Errorf("fetching thread %s: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.Thread{}, res.Err
		}
		return res.Val.(domain.Thread), nil
	}
}

func (s *boardService) fetchThread(ctx context.Context, key string) (domain.Thread, error) {
	data, err := s.client.Get(ctx, "/thread?no="+key)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && decodeStatus(data) == statusFailure {
			return domain.Thread{}, fmt.Errorf("fetching thread %s: %w", key, domain.ErrThreadUnavailable)
		}
		return domain.Thread{}, fmt.Errorf("fetching thread %s: %w", key, err)
	}

	var env threadEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Thread{}, fmt.Errorf("parsing thread %s: %w", key, err)
	}
	if env.Status == statusFailure || env.Thread == nil || env.Thread.Post.No == 0 {
		return domain.Thread{}, fmt.Errorf("fetching thread %s: %w", key, domain.ErrThreadUnavailable)
	}
	return *env.Thread, nil
}

func (s *boardService) PostThread(ctx context.Context, sub domain.Submission) error {
	fields := map[string]string{
		"name":    sub.Name,
		"email":   sub.Email,
		"subject": sub.Subject,
		"comment": sub.Comment,
	}
	if err := s.submit(ctx, "/thread", fields, sub.ImagePath); err != nil {
		return fmt.Errorf("posting thread: %w", err)
	}
	return nil
}

func (s *boardService) PostReply(ctx context.Context, threadNo uint64, sub domain.Submission) error {
	fields := map[string]string{
		"threadNo": strconv.FormatUint(threadNo, 10),
		"name":     sub.Name,
		"email":    sub.Email,
		"comment":  sub.Comment,
	}
	if err := s.submit(ctx, "/post", fields, sub.ImagePath); err != nil {
		return fmt.Errorf("replying to %d: %w", threadNo, err)
	}
	// A fetch started before the reply must not answer the reload after it.
	s.threads.Forget(fields["threadNo"])
	return nil
}

func (s *boardService) submit(ctx context.Context, path string, fields map[string]string, imagePath string) error {
	body, contentType, err := encodeForm(fields, imagePath)
	if err != nil {
		return err
	}

	data, err := s.client.Post(ctx, path, contentType, body)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return fmt.Errorf("%w: %s", domain.ErrSubmissionRejected, se.Error())
		}
		return err
	}
	if decodeStatus(data) == statusFailure {
		return domain.ErrSubmissionRejected
	}
	return nil
}

// encodeForm builds the multipart body the board expects. Field order is
// fixed so requests are reproducible.
func encodeForm(fields map[string]string, imagePath string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, name := range []string{"threadNo", "name", "email", "subject", "comment"} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if err := w.WriteField(name, v); err != nil {
			return nil, "", fmt.Errorf("writing %s: %w", name, err)
		}
	}

	imagePath = strings.TrimSpace(imagePath)
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, "", fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()

		filename := filepath.Base(imagePath)
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("copying image: %w", err)
		}
		if err := w.WriteField("filename", filename); err != nil {
			return nil, "", fmt.Errorf("writing filename: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func decodeStatus(data []byte) string {
	var env statusEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(env.Status))
}
