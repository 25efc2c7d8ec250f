package extract

import (
	"context"

	"github.com/tolu-akinola/paystub-tracker/internal/pdftext"
)

// PdftextAdapter bridges the pdftext extractor onto the TextExtractor port.
type PdftextAdapter struct {
	e *pdftext.Extractor
}

func NewPdftextAdapter(e *pdftext.Extractor) *PdftextAdapter {
	return &PdftextAdapter{e: e}
}

func (a *PdftextAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
	}, err
}
