// Package pdftext recovers plain text from source documents. PDFs go through
// poppler's pdftotext with -layout so the stub's columnar tables survive
// linearization; plain-text files are read directly. Image-only documents
// are not supported.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tolu-akinola/paystub-tracker/constants"
)

type Config struct {
	Pdftotext string        // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int           // 0 = no limit
	Timeout   time.Duration // 0 = no limit, bounds one pdftotext run
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.TXT
	Method     string // "pdf-text" | "plain-text"
	Duration   time.Duration
	Warnings   []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text recovery", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.TXT:
		res, err := e.extractTXT(path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix [-l N] <path> -
	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(e.cfg.MaxPages))
	}
	args = append(args, path, "-")

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return Result{SourceType: constants.PDF, Warnings: []string{string(errb)}}, err
	}
	raw := string(out)
	// A form feed \f separates pages in pdftotext output.
	pages := 1 + strings.Count(raw, "\f")
	return Result{
		Text:       Normalize(raw),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
	}, nil
}

func (e *Extractor) extractTXT(path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{SourceType: constants.TXT}, err
	}
	return Result{
		Text:       Normalize(string(b)),
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "plain-text",
	}, nil
}
