package board

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "golang.org/x/image/webp"
)

const (
	thumbWidth    = 24
	thumbHeight   = 12
	maxThumbBytes = 4 << 20
)

// ThumbnailLoadedMsg carries a rendered image thumbnail. Preview is empty
// when the image could not be fetched or decoded; that result is cached too.
type ThumbnailLoadedMsg struct {
	URL     string
	Preview string
	Err     error
}

var thumbClient = &http.Client{Timeout: 6 * time.Second}

// ensureThumbnailCmd fetches the selected post's image when thumbnails are
// on and it is not cached or in flight.
func (m *Model) ensureThumbnailCmd() tea.Cmd {
	if !m.showImage {
		return nil
	}
	pv, ok := m.SelectedPost()
	if !ok || pv.Image == nil {
		return nil
	}
	u := pv.Image.URL
	if _, ok := m.thumbs[u]; ok {
		return nil
	}
	if m.thumbLoading[u] {
		return nil
	}
	if !isFetchableURL(u) {
		m.thumbs[u] = ""
		return nil
	}
	m.thumbLoading[u] = true
	return fetchThumbnail(u, thumbWidth, thumbHeight)
}

func isFetchableURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

func fetchThumbnail(u string, w, h int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), thumbClient.Timeout)
		defer cancel()
		preview, err := loadThumbnail(ctx, u, w, h)
		return ThumbnailLoadedMsg{URL: u, Preview: preview, Err: err}
	}
}

func loadThumbnail(ctx context.Context, u string, w, h int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := thumbClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("thumbnail status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbBytes))
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return renderANSIThumbnail(img, w, h), nil
}

// renderANSIThumbnail samples img onto a w×h grid of truecolor cells.
func renderANSIThumbnail(img image.Image, w, h int) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	w = max(w, 4)
	h = max(h, 2)
	var out strings.Builder
	for y := range h {
		for x := range w {
			sx := b.Min.X + x*b.Dx()/w
			sy := b.Min.Y + y*b.Dy()/h
			c := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			fmt.Fprintf(&out, "\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
		}
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
