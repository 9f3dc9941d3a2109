// Package pipeline coordinates format dispatch, decoding, and milestone
// extraction into a single call producing a complete project record.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/scopelens/scopelens/constants"
	"github.com/scopelens/scopelens/internal/decode"
	"github.com/scopelens/scopelens/internal/entity"
	"github.com/scopelens/scopelens/internal/extract"
	"github.com/scopelens/scopelens/internal/llm"
)

// Processor runs one extraction per call: remote extractor when configured,
// heuristic engine otherwise or on any remote failure.
type Processor struct {
	logger *slog.Logger
	remote llm.ProjectExtractor
	now    func() time.Time
}

// NewProcessor builds a processor. A nil remote disables the remote path
// entirely and the heuristics run alone.
func NewProcessor(logger *slog.Logger, remote llm.ProjectExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, remote: remote, now: time.Now}
}

// Extract turns raw uploaded bytes into a project record. Only unsupported
// formats and decode failures return errors; missing structure inside
// decodable content degrades to placeholder milestones instead.
func (p *Processor) Extract(ctx context.Context, fileName, mimeType string, data []byte) (entity.Project, error) {
	format, err := decode.Detect(fileName, mimeType)
	if err != nil {
		p.logger.Warn("pipeline.extract.unsupported", "file", fileName, "mime", mimeType)
		return entity.Project{}, err
	}

	if p.remote != nil {
		proj, _, rerr := p.remote.ExtractProject(ctx, llm.ExtractRequest{
			Data:     data,
			MIMEType: mimeType,
			FileName: fileName,
		})
		if rerr == nil && len(proj.Milestones) > 0 {
			p.logger.Info("pipeline.extract.remote_ok",
				"file", fileName, "milestones", len(proj.Milestones))
			return proj, nil
		}
		if rerr != nil {
			p.logger.Warn("pipeline.extract.remote_failed",
				"file", fileName, "error", rerr, "fallback", "heuristics")
		} else {
			p.logger.Warn("pipeline.extract.remote_failed",
				"file", fileName, "reason", "empty remote result", "fallback", "heuristics")
		}
	}

	milestones, err := p.heuristics(ctx, format, data)
	if err != nil {
		return entity.Project{}, err
	}
	milestones = extract.EnsureMilestones(milestones, format)
	total := extract.Aggregate(milestones)

	p.logger.Info("pipeline.extract.ok",
		"file", fileName,
		"format", string(format),
		"milestones", len(milestones),
		"hours", total.Hours,
		"price", total.Price,
	)
	return entity.Project{
		FileName:      fileName,
		UploadDate:    p.now().UTC(),
		Milestones:    milestones,
		TotalBallpark: &total,
	}, nil
}

func (p *Processor) heuristics(ctx context.Context, format constants.Format, data []byte) ([]entity.Milestone, error) {
	switch format {
	case constants.XLSX:
		g, err := decode.Workbook(data)
		if err != nil {
			return nil, err
		}
		return extract.FromGrid(g), nil
	case constants.PDF:
		text, err := decode.PDFText(ctx, data)
		if err != nil {
			return nil, err
		}
		return extract.FromText(text), nil
	default:
		return extract.FromText(string(data)), nil
	}
}
