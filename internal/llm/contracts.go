package llm

import (
	"context"

	"github.com/scopelens/scopelens/internal/entity"
)

// ExtractRequest carries the raw upload to the remote extraction service.
type ExtractRequest struct {
	Data     []byte
	MIMEType string
	FileName string
}

// ProjectExtractor is the interface the pipeline depends on. The remote
// service is preferred when configured; the heuristic engine substitutes for
// it on any error. The raw JSON payload is returned for logging/auditing.
type ProjectExtractor interface {
	ExtractProject(ctx context.Context, req ExtractRequest) (entity.Project, []byte /*rawJSON*/, error)
}
