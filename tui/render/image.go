package render

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveImageURL joins an image name onto the configured image context.
// Absolute URL contexts are joined with "/", path contexts are concatenated
// as-is. ok is false when there is no image.
func ResolveImageURL(context, image string) (string, bool) {
	if strings.TrimSpace(image) == "" {
		return "", false
	}
	if isAbsoluteURL(context) {
		return context + "/" + image, true
	}
	return context + image, true
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Permalink is the navigable reference for a post: /{board}/res/{no}.
func Permalink(board string, no uint64) string {
	return fmt.Sprintf("/%s/res/%d", strings.Trim(board, "/"), no)
}
