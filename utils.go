package renamed

import (
	"fmt"
	"strings"
)

// extractPath strips scheme and host from a URL for log lines.
func extractPath(fullURL string) string {
	if idx := strings.Index(fullURL, "://"); idx != -1 {
		rest := fullURL[idx+3:]
		if pathIdx := strings.Index(rest, "/"); pathIdx != -1 {
			return rest[pathIdx:]
		}
		return "/"
	}
	if strings.HasPrefix(fullURL, "/") {
		return fullURL
	}
	return "/" + fullURL
}

// lastPathSegment returns the trailing path segment of a URL, ignoring any
// query string and trailing slash.
func lastPathSegment(rawURL string) string {
	trimmed := rawURL
	if idx := strings.IndexByte(trimmed, '?'); idx != -1 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimSuffix(trimmed, "/")
	if idx := strings.LastIndexByte(trimmed, '/'); idx != -1 {
		return trimmed[idx+1:]
	}
	return trimmed
}

func formatBytes(n int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.1f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
