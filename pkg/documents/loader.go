package documents

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrSourceNotFound reports a missing or unreadable source document.
// Fatal at startup: without a corpus there is nothing to index.
var ErrSourceNotFound = errors.New("source document not found")

// ErrPDFToolNotFound reports that pdftotext (poppler-utils) is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH, install poppler-utils to ingest PDF sources")

// CommandRunner abstracts external command execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Loader extracts plain text from a source document. Text and markdown files
// are read directly; PDFs are extracted through pdftotext.
type Loader struct {
	runner CommandRunner
}

func NewLoader() *Loader {
	return &Loader{runner: execRunner{}}
}

// NewLoaderWithRunner is used by tests to substitute the pdftotext invocation.
func NewLoaderWithRunner(runner CommandRunner) *Loader {
	return &Loader{runner: runner}
}

// Load returns the document's plain text.
func (l *Loader) Load(ctx context.Context, sourcePath string) (string, error) {
	info, err := os.Stat(sourcePath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}

	switch strings.ToLower(filepath.Ext(sourcePath)) {
	case ".pdf":
		return l.loadPDF(ctx, sourcePath)
	default:
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return string(data), nil
	}
}

func (l *Loader) loadPDF(ctx context.Context, sourcePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", ErrPDFToolNotFound
	}

	// "-" writes extracted text to stdout; -layout keeps column ordering sane.
	out, err := l.runner.Run(ctx, "pdftotext", "-layout", sourcePath, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed for %s: %w", sourcePath, err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("%w: %s produced no extractable text", ErrSourceNotFound, sourcePath)
	}
	return text, nil
}
