package domain

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Post is a single authored message with a number unique within its thread.
type Post struct {
	No              uint64    `json:"no"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Timestamp       string    `json:"timestamp"`
	Comment         string    `json:"comment"`
	CommentSegments []Segment `json:"comment_segments,omitempty"` // nil when the server sent none
	Image           string    `json:"image,omitempty"`
	Filename        string    `json:"filename,omitempty"`
	Meta            string    `json:"meta,omitempty"`
	QuotedBy        []uint64  `json:"quoted_by,omitempty"` // Numbers of posts that quote this one
}

// HasImage reports whether the post carries an image to display.
func (p Post) HasImage() bool {
	return strings.TrimSpace(p.Image) != ""
}

// Segment is one line of a post's comment with its formatting tags.
// A nil Format is treated as no tags.
type Segment struct {
	Text   string   `json:"segment"`
	Format []string `json:"format"`
}

// UnmarshalJSON accepts both "segment" and "text" as the text key.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Segment *string  `json:"segment"`
		Text    *string  `json:"text"`
		Format  []string `json:"format"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Format = raw.Format
	s.Text = ""
	switch {
	case raw.Segment != nil:
		s.Text = *raw.Segment
	case raw.Text != nil:
		s.Text = *raw.Text
	}
	return nil
}

// Submission is a new thread or reply as entered by the user.
type Submission struct {
	Name      string
	Email     string
	Subject   string // Only sent for new threads
	Comment   string
	ImagePath string // Local file to upload, empty for none
}

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpeg": {},
	".jpg":  {},
	".gif":  {},
	".webm": {},
}

// Validate applies the board's posting rule: a comment or an image is
// required, and images must have a supported extension. Extensions are
// matched case-sensitively, as the server does.
func (s Submission) Validate() error {
	comment := strings.TrimSpace(s.Comment)
	image := strings.TrimSpace(s.ImagePath)
	if comment == "" && image == "" {
		return ErrEmptyPost
	}
	if image != "" {
		if _, ok := allowedImageExts[filepath.Ext(image)]; !ok {
			return ErrUnsupportedImage
		}
	}
	return nil
}
