// Package pipeline orchestrates the per-document stages: text recovery,
// field extraction, schema validation and run caching. Per-document failures
// are logged and skipped so one unreadable stub never sinks a batch.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tolu-akinola/paystub-tracker/constants"
	"github.com/tolu-akinola/paystub-tracker/internal/common"
	"github.com/tolu-akinola/paystub-tracker/internal/entity"
	"github.com/tolu-akinola/paystub-tracker/internal/extract"
	"github.com/tolu-akinola/paystub-tracker/internal/format"
	"github.com/tolu-akinola/paystub-tracker/internal/ingest"
	"github.com/tolu-akinola/paystub-tracker/internal/paystub"
	"github.com/tolu-akinola/paystub-tracker/internal/repository"
)

// Config holds behavior flags for the pipeline.
type Config struct {
	UseCache bool
}

type Pipeline struct {
	Logger    *slog.Logger
	Cfg       Config
	Text      extract.TextExtractor
	Fields    *paystub.Extractor
	Runs      repository.RunRepository // nil disables caching
	recSchema map[string]any
}

func NewPipeline(logger *slog.Logger, cfg Config, tx extract.TextExtractor, fields *paystub.Extractor, runs repository.RunRepository) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if fields == nil {
		fields = paystub.NewExtractor(logger)
	}
	return &Pipeline{
		Logger:    logger,
		Cfg:       cfg,
		Text:      tx,
		Fields:    fields,
		Runs:      runs,
		recSchema: BuildRecordJSONSchema(),
	}
}

// BatchStats aggregates the outcome of one batch.
type BatchStats struct {
	Files     int
	Extracted int
	Cached    int
	Skipped   int
	Failed    int
}

// ProcessFile extracts one document's record, serving it from the run cache
// when the file content is unchanged. fromCache reports a cache hit.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (rec *entity.Record, fromCache bool, err error) {
	hash := ""
	if p.Runs != nil {
		hash, err = ingest.HashFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("hash file: %w", err)
		}
		if p.Cfg.UseCache {
			if cached, cerr := p.Runs.GetByHash(ctx, hash); cerr == nil && cached.Status == string(constants.RunStatusOK) {
				rec := entity.NewRecord()
				if uerr := json.Unmarshal([]byte(cached.RecordJSON), rec); uerr == nil {
					p.Logger.Debug("pipeline.cache.hit", "path", path, "hash", hash)
					return rec, true, nil
				}
				p.Logger.Warn("pipeline.cache.corrupt", "path", path, "hash", hash)
			} else if cerr != nil && !errors.Is(cerr, common.ErrNotFound) {
				p.Logger.Warn("pipeline.cache.lookup", "path", path, "error", cerr)
			}
		}
	}

	res, err := p.Text.Extract(ctx, path)
	if err != nil {
		return nil, false, fmt.Errorf("recover text: %w", err)
	}
	for _, w := range res.Warnings {
		p.Logger.Warn("pipeline.text.warning", "path", path, "warning", w)
	}

	rec = p.Fields.Extract(res.Text)
	p.Logger.Info("pipeline.file.ok",
		"path", path, "method", res.Method, "pages", res.Pages, "fields", rec.Len())

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, false, fmt.Errorf("marshal record: %w", err)
	}
	if verr := ValidateJSONAgainstSchema(p.recSchema, recJSON); verr != nil {
		p.Logger.Warn("pipeline.validate", "path", path, "error", verr)
	}

	if p.Runs != nil && rec.Len() > 0 {
		payDate, _ := rec.Get(constants.FieldPayDate)
		run := &entity.ExtractionRun{
			ID:         uuid.New(),
			SourcePath: path,
			FileHash:   hash,
			PayDate:    payDate,
			FieldCount: rec.Len(),
			RecordJSON: string(recJSON),
			Status:     string(constants.RunStatusOK),
			CreatedAt:  time.Now().UTC(),
		}
		if serr := p.Runs.Save(ctx, run); serr != nil {
			p.Logger.Warn("pipeline.cache.save", "path", path, "error", serr)
		}
	}
	return rec, false, nil
}

// ProcessBatch runs every path through ProcessFile, skipping failures and
// empty extractions, then applies the cross-record YTD pass. Records come
// back in input order.
func (p *Pipeline) ProcessBatch(ctx context.Context, paths []string) ([]format.LabeledRecord, BatchStats) {
	var (
		records []format.LabeledRecord
		stats   BatchStats
	)
	stats.Files = len(paths)

	for _, path := range paths {
		rec, cached, err := p.ProcessFile(ctx, path)
		if err != nil {
			p.Logger.Error("pipeline.file.failed", "path", path, "error", err)
			stats.Failed++
			continue
		}
		if rec.Len() == 0 {
			p.Logger.Warn("pipeline.file.empty", "path", path)
			stats.Skipped++
			continue
		}
		if cached {
			stats.Cached++
		} else {
			stats.Extracted++
		}
		records = append(records, format.LabeledRecord{
			Label:  filepath.Base(path),
			Record: rec,
		})
	}

	p.forwardFillYTD(records)
	return records, stats
}
