package systemc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/mgomes/sclex/internal/logging/logfields"
	"github.com/mgomes/sclex/lexer"
)

var ErrUnknownTable = errors.New("unknown vocabulary table")

// ParseOverlay extends the built-in vocabulary with a YAML document mapping
// table names to extra identifiers:
//
//	classes: [my_bus, my_router]
//	functions: [tick]
func ParseOverlay(data []byte) (*lexer.Vocabulary, error) {
	var extra map[string][]string
	if err := yaml.UnmarshalStrict(data, &extra); err != nil {
		return nil, fmt.Errorf("systemc: parse vocabulary overlay: %w", err)
	}
	vocab, unknown := Vocabulary().Extend(extra)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("systemc: %w: %s", ErrUnknownTable, strings.Join(unknown, ", "))
	}
	return vocab, nil
}

// LoadOverlay reads and parses a vocabulary overlay file.
func LoadOverlay(path string) (*lexer.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("systemc: read vocabulary overlay: %w", err)
	}
	vocab, err := ParseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	words := 0
	for _, entry := range vocab.Categories() {
		words += entry.Len()
	}
	log.WithFields(logrus.Fields{
		logfields.File:  path,
		logfields.Count: words,
	}).Debug("Loaded vocabulary overlay")
	return vocab, nil
}
