package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scopelens/scopelens/internal/entity"
	"github.com/scopelens/scopelens/internal/llm"
)

// ExtractProject implements llm.ProjectExtractor against the Gemini
// generateContent endpoint, attaching the raw document inline and
// constraining the response with the project JSON schema.
func (c *Client) ExtractProject(ctx context.Context, req llm.ExtractRequest) (entity.Project, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"file", req.FileName,
		"mime", req.MIMEType,
		"bytes", len(req.Data),
	)

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{
				{"inline_data": map[string]any{
					"mime_type": req.MIMEType,
					"data":      base64.StdEncoding.EncodeToString(req.Data),
				}},
				{"text": llm.BuildExtractionPrompt()},
			}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema":   c.schema.Doc(),
		},
	}

	raw, status, err := c.generate(ctx, rid, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Project{}, raw, err
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		return entity.Project{}, raw, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gc.Candidates) == 0 || len(gc.Candidates[0].Content.Parts) == 0 {
		return entity.Project{}, raw, fmt.Errorf("no candidates in gemini response")
	}
	rawContent := []byte(strings.TrimSpace(gc.Candidates[0].Content.Parts[0].Text))

	// Normalize before validating so strict schema checks stay strict.
	cleaned, notes, err := llm.NormalizeProjectJSON(rawContent)
	if err != nil {
		return entity.Project{}, rawContent, fmt.Errorf("sanitize failed: %w", err)
	}
	if len(notes) > 0 {
		c.log.Warn("llm.extract.sanitize_applied", "req_id", rid, "notes", notes)
	}
	if err := c.schema.Validate(cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Project{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var payload struct {
		Milestones    []entity.Milestone `json:"milestones"`
		TotalBallpark *entity.Ballpark   `json:"totalBallpark"`
	}
	if err := json.Unmarshal(cleaned, &payload); err != nil {
		return entity.Project{}, cleaned, fmt.Errorf("unmarshal project: %w", err)
	}
	if len(payload.Milestones) == 0 {
		return entity.Project{}, cleaned, fmt.Errorf("no milestones in gemini response")
	}
	for i := range payload.Milestones {
		payload.Milestones[i].ID = fmt.Sprintf("m-%d", i)
		if len(payload.Milestones[i].Tasks) == 0 {
			payload.Milestones[i].Tasks = []string{"Tasks extracted from document content"}
		}
		if payload.Milestones[i].Exclusions == nil {
			payload.Milestones[i].Exclusions = []string{}
		}
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"milestones", len(payload.Milestones),
		"has_total", payload.TotalBallpark != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	// An externally supplied total is passed through unmodified.
	return entity.Project{
		FileName:      req.FileName,
		UploadDate:    time.Now().UTC(),
		Milestones:    payload.Milestones,
		TotalBallpark: payload.TotalBallpark,
	}, cleaned, nil
}

// generate posts one generateContent request and returns the raw response
// body. The API key travels in the x-goog-api-key header per the Gemini REST
// convention.
func (c *Client) generate(ctx context.Context, rid string, body map[string]any) ([]byte, int, error) {
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		c.log.Error("llm.gemini.encode_error", "req_id", rid, "error", err)
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		c.log.Error("llm.gemini.build_request_error", "req_id", rid, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	c.log.Info("llm.gemini.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"content_length", len(bs),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("llm.gemini.send_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("llm.gemini.response_body_close_error", "req_id", rid, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.log.Info("llm.gemini.response",
		"req_id", rid,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("gemini status %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
