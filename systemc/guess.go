package systemc

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"
)

// Guess scores. Callers treat a score of at least Likely as a match.
const (
	Certain  = 1.0
	Likely   = 0.5
	Possible = 0.25
)

// A plain C header only counts as SystemC when it declares a namespace.
var namespaceLine = regexp2.MustCompile(`^\s*namespace\b`, regexp2.Multiline)

// Guess scores how likely it is that the lexer applies to a file, given
// any of its name, its mimetype and a sample of its contents. Empty
// arguments are ignored.
func Guess(filename, mimetype, source string) float64 {
	if mimetype != "" {
		if mediatype, _, err := mime.ParseMediaType(mimetype); err == nil && slices.Contains(Mimetypes, mediatype) {
			return Certain
		}
	}
	if filename == "" {
		return 0
	}

	base := filepath.Base(filename)
	if strings.EqualFold(filepath.Ext(base), ".h") {
		if ok, err := namespaceLine.MatchString(source); err == nil && ok {
			return Certain
		}
		return Possible
	}
	if MatchesFilename(base) {
		return Certain
	}
	return 0
}

// MatchesFilename reports whether name matches one of Filenames.
func MatchesFilename(name string) bool {
	base := filepath.Base(name)
	for _, pattern := range Filenames {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
