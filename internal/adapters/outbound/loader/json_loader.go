package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openkraft/repocheck/internal/domain"
)

// JSONLoader implements domain.DocumentLoader for JSON configuration files.
type JSONLoader struct {
	kind string
}

// New creates a JSONLoader. kind names the configuration in errors
// (e.g. "Renovate").
func New(kind string) *JSONLoader {
	return &JSONLoader{kind: kind}
}

// Resolve returns the first candidate under root that exists as a regular
// file, parsed. Later candidates are never read once one is found. A
// document whose top level is not an object is a *domain.ParseError.
func (l *JSONLoader) Resolve(root string, candidates []string) (*domain.ResolvedDocument, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		full := filepath.Join(absRoot, filepath.FromSlash(candidate))
		info, err := os.Stat(full)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &domain.ParseError{Path: candidate, Err: err}
		}
		if info.IsDir() {
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return nil, &domain.ParseError{Path: candidate, Err: err}
		}

		doc, err := domain.ParseDocument(data)
		if err != nil {
			return nil, &domain.ParseError{Path: candidate, Err: err}
		}
		if doc.Kind() != domain.KindObject {
			return nil, &domain.ParseError{Path: candidate, Err: fmt.Errorf("expected a JSON object, got %s", doc.Kind())}
		}

		rel, err := filepath.Rel(absRoot, full)
		if err != nil {
			rel = candidate
		}

		return &domain.ResolvedDocument{
			Path:     full,
			RelPath:  filepath.ToSlash(rel),
			Document: doc,
		}, nil
	}

	return nil, &domain.NotFoundError{Kind: l.kind, Candidates: candidates}
}
