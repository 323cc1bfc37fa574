// Package systemc defines the SystemC lexer: its state table, its
// identifier vocabulary and the metadata used to select it for a file.
package systemc

import (
	"fmt"

	"github.com/mgomes/sclex/internal/logging"
	"github.com/mgomes/sclex/internal/logging/logfields"
	"github.com/mgomes/sclex/lexer"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "systemc")

const (
	// Name identifies the lexer.
	Name  = "systemc"
	Title = "SystemC"
)

var (
	Aliases   = []string{"sc"}
	Filenames = []string{"*.cpp", "*.hpp", "*.c++", "*.h++", "*.cc", "*.hh", "*.cxx", "*.hxx", "*.pde", "*.ino", "*.tpp", "*.h"}
	Mimetypes = []string{"text/x-c++hdr", "text/x-c++src"}
)

// StartStack is the initial state stack. The input begins at the start of
// a line, so bol sits on top of root.
var StartStack = []string{"root", "bol"}

// Option customizes a lexer built by New.
type Option func(*options)

type options struct {
	classifier lexer.Classifier
	name       string
}

// WithClassifier replaces the built-in vocabulary used for identifiers.
func WithClassifier(c lexer.Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// WithName overrides the definition name that appears in errors and logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New builds the SystemC lexer.
func New(opts ...Option) (*lexer.Definition, error) {
	o := options{classifier: Vocabulary(), name: Name}
	for _, opt := range opts {
		opt(&o)
	}
	if o.classifier == nil {
		return nil, fmt.Errorf("systemc: nil classifier")
	}
	return lexer.New(lexer.Config{Name: o.name, Start: StartStack}, rules(o.classifier))
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *lexer.Definition {
	def, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return def
}

var defaultLexer = MustNew()

// Lexer returns the shared lexer using the built-in vocabulary.
func Lexer() *lexer.Definition {
	return defaultLexer
}

// Tokens scans source with the shared lexer.
func Tokens(source string) []lexer.Token {
	return defaultLexer.Tokens(source)
}
