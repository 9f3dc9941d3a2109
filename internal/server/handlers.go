package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/decode"
	"github.com/scopelens/scopelens/internal/history"
)

// handleUpload accepts a multipart upload in the "file" field, runs the
// extraction pipeline, and saves the result to history unless save=false.
func (s *Service) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart upload with a 'file' field is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	fileName := filepath.Base(header.Filename)
	mimeType := header.Header.Get("Content-Type")
	formatLabel := "unknown"
	if f, derr := decode.Detect(fileName, mimeType); derr == nil {
		formatLabel = string(f)
	}

	project, err := s.processor.Extract(r.Context(), fileName, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnsupportedFormat):
			recordExtraction(formatLabel, "unsupported")
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, common.ErrDecodeFailed):
			recordExtraction(formatLabel, "decode_failed")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			recordExtraction(formatLabel, "error")
			s.logger.Error("server.upload.failed", "file", fileName, "error", err)
			writeError(w, http.StatusInternalServerError, "extraction failed")
		}
		return
	}
	recordExtraction(formatLabel, "ok")

	if r.URL.Query().Get("save") == "false" {
		writeJSON(w, http.StatusOK, project)
		return
	}
	entry, err := s.store.Save(r.Context(), project)
	if err != nil {
		s.logger.Error("server.upload.save_failed", "file", fileName, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save project to history")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("server.history.list_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("server.history.get_failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load project")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("server.history.delete_failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		s.logger.Error("server.history.clear_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
