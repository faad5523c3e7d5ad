// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/David-Botos/data-cleanse/pkg/classify"
	"github.com/David-Botos/data-cleanse/pkg/config"
	"github.com/David-Botos/data-cleanse/pkg/csvio"
	"github.com/David-Botos/data-cleanse/pkg/model"
)

// chunkClassifier is the per-chunk validation and partitioning step.
type chunkClassifier interface {
	ClassifyChunk(chunk *model.Chunk) (*classify.Result, error)
}

// Runner drives the run: sequential chunk retrieval, classification,
// per-chunk persistence, and the final merge. Chunks are processed
// strictly one at a time in file order.
type Runner struct {
	cfg        *config.Config
	classifier chunkClassifier
	logger     *zap.Logger
	runID      string
}

// New creates a Runner for the given configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	classifier, err := classify.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:        cfg,
		classifier: classifier,
		logger:     logger,
		runID:      uuid.New().String(),
	}, nil
}

// Run processes the whole input file. A missing input is fatal; a chunk
// failure is logged, recorded on the summary, and skipped. Both output
// categories accumulate in memory across the run and are merged into the
// final files at end of stream, so total memory grows with the output
// row count even though each chunk is bounded.
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	logger := r.logger.With(zap.String("runID", r.runID))
	logger.Info("Starting data processing",
		zap.String("input", r.cfg.InputPath),
		zap.Int("chunkSize", r.cfg.ChunkSize))

	source, err := csvio.NewSource(r.cfg.InputPath, r.cfg.ChunkSize)
	if err != nil {
		logger.Error("Input file unavailable", zap.Error(err))
		return nil, err
	}

	summary := model.NewRunSummary(r.runID)

	var cleanColumns, garbageColumns []string
	var cleanRows, garbageRows []model.Record

	err = source.Chunks(ctx, func(chunk *model.Chunk) error {
		logger.Info("Processing chunk",
			zap.Int("chunk", chunk.Index),
			zap.Int("rows", len(chunk.Rows)))
		start := time.Now()

		result, outcome, err := r.processChunk(chunk, logger)
		if err != nil {
			logger.Error("Error processing chunk",
				zap.Int("chunk", chunk.Index),
				zap.Error(err))
			summary.AddChunkError(chunk.Index, err)
			return nil
		}

		if cleanColumns == nil {
			cleanColumns = result.CleanColumns
			garbageColumns = result.GarbageColumns
		}
		cleanRows = append(cleanRows, result.Clean...)
		garbageRows = append(garbageRows, result.Garbage...)

		outcome.Duration = time.Since(start)
		summary.AddOutcome(*outcome)
		return nil
	})
	if err != nil {
		logger.Error("Chunk read failed", zap.Error(err))
		return summary, fmt.Errorf("failed to read input chunks: %w", err)
	}

	logger.Info("Data processing complete",
		zap.Int("chunksProcessed", summary.ChunksProcessed),
		zap.Int("chunksFailed", summary.ChunksFailed))

	// Final merge. The clean file is written whenever at least one chunk
	// succeeded; the garbage file only when a garbage row exists.
	if summary.ChunksProcessed > 0 {
		path := csvio.FinalPath(r.cfg.CleanPrefix)
		if err := csvio.WriteRecords(path, cleanColumns, cleanRows); err != nil {
			return summary, err
		}
		summary.CleanFinalFile = path
		logger.Info("Saved final cleaned dataset",
			zap.String("path", path),
			zap.Int("rows", len(cleanRows)))
	}

	if len(garbageRows) > 0 {
		path := csvio.FinalPath(r.cfg.GarbagePrefix)
		if err := csvio.WriteRecords(path, garbageColumns, garbageRows); err != nil {
			return summary, err
		}
		summary.GarbageFinalFile = path
		logger.Info("Saved final garbage dataset",
			zap.String("path", path),
			zap.Int("rows", len(garbageRows)))
	}

	summary.Complete()
	logger.Info("Run complete",
		zap.Int("rowsRead", summary.RowsRead),
		zap.Int("cleanRows", summary.CleanRows),
		zap.Int("garbageRows", summary.GarbageRows),
		zap.Int("chunksFailed", summary.ChunksFailed),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

// processChunk classifies one chunk and persists its subsets. The clean
// subset is always written, even when empty; the garbage subset only
// when non-empty.
func (r *Runner) processChunk(chunk *model.Chunk, logger *zap.Logger) (*classify.Result, *model.ChunkOutcome, error) {
	result, err := r.classifier.ClassifyChunk(chunk)
	if err != nil {
		return nil, nil, err
	}

	if len(result.Clean)+len(result.Garbage) != result.RowsRead {
		return nil, nil, fmt.Errorf("partition mismatch: %d rows in, %d clean + %d garbage out",
			result.RowsRead, len(result.Clean), len(result.Garbage))
	}

	outcome := &model.ChunkOutcome{
		Index:       chunk.Index,
		RowsRead:    result.RowsRead,
		CleanRows:   len(result.Clean),
		GarbageRows: len(result.Garbage),
	}

	cleanPath := csvio.ChunkPath(r.cfg.CleanPrefix, chunk.Index)
	if err := csvio.WriteRecords(cleanPath, result.CleanColumns, result.Clean); err != nil {
		return nil, nil, err
	}
	outcome.CleanFile = cleanPath
	logger.Info("Saved cleaned data chunk",
		zap.Int("chunk", chunk.Index),
		zap.String("path", cleanPath))

	if len(result.Garbage) > 0 {
		garbagePath := csvio.ChunkPath(r.cfg.GarbagePrefix, chunk.Index)
		if err := csvio.WriteRecords(garbagePath, result.GarbageColumns, result.Garbage); err != nil {
			return nil, nil, err
		}
		outcome.GarbageFile = garbagePath
		logger.Info("Saved garbage data chunk",
			zap.Int("chunk", chunk.Index),
			zap.String("path", garbagePath))
	} else {
		logger.Info("No garbage data in chunk", zap.Int("chunk", chunk.Index))
	}

	return result, outcome, nil
}
