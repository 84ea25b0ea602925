package gallery

import (
	"strings"
	"time"
)

// MaxUploadBytes is the largest accepted upload size (10 MiB).
const MaxUploadBytes = 10 * 1024 * 1024

const keyTimeLayout = "20060102T150405"

// AllowedContentTypes lists the exact MIME types accepted for upload.
// Comparison is a string match against the client-declared type; object
// bytes are never sniffed.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// SanitizeFilename reduces a client-supplied filename to a form safe for
// use as an object key component:
//   - directory components are stripped (both / and \ separators)
//   - traversal sequences (..) are removed
//   - whitespace runs collapse to a single underscore
//   - runes outside [A-Za-z0-9._-] are dropped
//   - leading and trailing '.' and '_' are trimmed
//
// The result may be empty if nothing safe remains.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "..", "")
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isSafeKeyRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

func isSafeKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '_':
		return true
	}
	return false
}

// ObjectKey derives the storage key for an upload received at t:
// the UTC timestamp at whole-second resolution, a dash, and the sanitized
// filename. Two uploads of the same filename within the same second map to
// the same key; the second write replaces the first.
func ObjectKey(t time.Time, filename string) string {
	return t.UTC().Format(keyTimeLayout) + "-" + SanitizeFilename(filename)
}
