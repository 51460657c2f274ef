package web

import "strings"

// Resolve computes the absolute URL of a stylesheet reference found in the document at documentURL.
// It never fails; malformed input produces a best-effort concatenation.
//
// Resolution order:
//   - http:// and https:// references are returned unchanged
//   - protocol-relative references (//cdn.example.com/a.css) take the document's scheme
//   - root-relative references (/a.css) replace the document's whole path
//   - leading ../ groups walk up the document's directories, never above the host root
//   - anything else replaces the document's final path segment
func Resolve(reference, documentURL string) string {
	if hasHTTPScheme(reference) {
		return reference
	}

	scheme, host, dirs := splitDocumentURL(documentURL)
	origin := host
	if scheme != "" {
		origin = scheme + "://" + host
	}

	switch {
	case strings.HasPrefix(reference, "//"):
		if scheme == "" {
			return strings.TrimPrefix(reference, "//")
		}
		return scheme + ":" + reference
	case strings.HasPrefix(reference, "/"):
		return origin + reference
	case strings.HasPrefix(reference, "../"):
		ups := 0
		for strings.HasPrefix(reference, "../") {
			reference = reference[len("../"):]
			ups++
		}
		if ups >= len(dirs) {
			dirs = nil
		} else {
			dirs = dirs[:len(dirs)-ups]
		}
		return join(origin, dirs, reference)
	default:
		for strings.HasPrefix(reference, "./") {
			reference = reference[len("./"):]
		}
		return join(origin, dirs, reference)
	}
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// splitDocumentURL breaks an absolute URL into its scheme, host and directory segments.
// The final path segment (the document's file name) is not part of dirs, and neither are
// the query string or fragment. A trailing slash means the path has no file name.
func splitDocumentURL(documentURL string) (scheme, host string, dirs []string) {
	rest := documentURL
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	if s, after, ok := strings.Cut(rest, "://"); ok {
		scheme, rest = s, after
	}

	host, path, _ := strings.Cut(rest, "/")

	segments := strings.Split(path, "/")
	for _, seg := range segments[:len(segments)-1] {
		if seg != "" {
			dirs = append(dirs, seg)
		}
	}

	return scheme, host, dirs
}

func join(origin string, dirs []string, file string) string {
	var sb strings.Builder
	sb.WriteString(origin)
	for _, d := range dirs {
		sb.WriteString("/")
		sb.WriteString(d)
	}
	sb.WriteString("/")
	sb.WriteString(file)
	return sb.String()
}
