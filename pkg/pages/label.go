package pages

import (
	"net/url"
	"strings"
	"unicode/utf16"
)

const (
	// MaxLabelLen is the longest label shown before truncation
	MaxLabelLen = 40
	ellipsis    = "..."
)

// schemes whose URLs always carry a host and a rooted path
var hierarchicalSchemes = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

// Label derives the display label for an indexed URL: hostname plus path,
// cut to 37 characters and an ellipsis when longer than 40. Length is
// counted in UTF-16 code units, so a character outside the BMP counts as
// two. A URL that does not parse as absolute is returned unchanged.
func Label(raw string) string {
	host, path, ok := hostAndPath(raw)
	if !ok {
		return raw
	}

	label := host + path
	if utf16Len(label) > MaxLabelLen {
		label = cutUTF16(label, MaxLabelLen-len(ellipsis)) + ellipsis
	}
	return label
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// cutUTF16 returns the longest prefix of s that fits in limit UTF-16 code
// units. A surrogate pair that would straddle the limit is dropped whole.
func cutUTF16(s string, limit int) string {
	n := 0
	for i, r := range s {
		w := 1
		if r > 0xFFFF {
			w = 2
		}
		if n+w > limit {
			return s[:i]
		}
		n += w
	}
	return s
}

func hostAndPath(raw string) (string, string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", "", false
	}

	scheme := strings.ToLower(u.Scheme)
	if !hierarchicalSchemes[scheme] {
		return u.Hostname(), u.EscapedPath() + u.Opaque, true
	}
	if u.Host == "" {
		return "", "", false
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return strings.ToLower(u.Hostname()), path, true
}
