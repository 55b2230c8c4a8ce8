package analysis

import (
	"net/url"
	"strings"
)

var imageSuffixes = []string{".jpg", ".jpeg", ".png", ".gif"}

// Classify decides whether content names an image resource or is freeform
// text. Only the URL path is inspected, so query strings do not affect the
// outcome.
func Classify(content string) Kind {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return KindText
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return KindText
	}
	path := strings.ToLower(u.Path)
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(path, suffix) {
			return KindImage
		}
	}
	return KindText
}
