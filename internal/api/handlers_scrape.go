package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/donorscan/internal/fetch"
	"github.com/dgallion1/donorscan/internal/ner"
	"github.com/dgallion1/donorscan/internal/parser"
	"github.com/go-chi/chi/v5/middleware"
)

// extractFailed is the only failure message clients see.
const extractFailed = "failed to extract names"

const maxRequestBytes = 1 << 20

type scrapeRequest struct {
	URL        string `json:"url"`
	PeopleOnly bool   `json:"people_only"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScrape(w, r)
	if !ok {
		return
	}

	res, err := s.extractor.Extract(detach(r), req.URL)
	if err != nil {
		s.logFailure(r, req.URL, err)
		jsonError(w, extractFailed, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScrapeNames(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScrape(w, r)
	if !ok {
		return
	}

	res, err := s.extractor.ExtractLegacy(detach(r), req.URL, req.PeopleOnly)
	if err != nil {
		s.logFailure(r, req.URL, err)
		jsonError(w, extractFailed, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decodeScrape(w http.ResponseWriter, r *http.Request) (scrapeRequest, bool) {
	var req scrapeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		jsonError(w, "url is required", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// detach keeps request values but ignores client disconnects: an
// extraction runs to completion or failure once started.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (s *Server) logFailure(r *http.Request, rawURL string, err error) {
	s.log.Error("extraction failed",
		"request_id", middleware.GetReqID(r.Context()),
		"url", rawURL,
		"kind", errorKind(err),
		"error", err,
	)
}

func errorKind(err error) string {
	var (
		fetchErr *fetch.FetchError
		decErr   *parser.DecodeError
		recErr   *ner.RecognitionError
	)
	switch {
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &decErr):
		return "decode"
	case errors.As(err, &recErr):
		return "recognition"
	default:
		return "unknown"
	}
}
