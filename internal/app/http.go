package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taxguide/api/internal/content"
	"taxguide/api/internal/export"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writeJSON(w, http.StatusNoContent, map[string]any{})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{
			"database": map[string]any{"status": "ok"},
		}

		if err := s.service.Ping(ctx); err != nil {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			checks["database"] = map[string]any{
				"status": "error",
				"error":  err.Error(),
			}
		}

		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/comparison-data" {
		data, err := s.service.Comparison(r.Context())
		if err != nil {
			status, code, message := mapError(err)
			writeError(w, status, code, message)
			return
		}
		writeJSON(w, http.StatusOK, data)
		return
	}

	if strings.HasPrefix(r.URL.Path, "/api/guide") {
		s.handleGuide(w, r)
		return
	}

	if strings.HasPrefix(r.URL.Path, "/api/export/") {
		s.handleExport(w, r)
		return
	}

	switch r.URL.Path {
	case "/api/tax-brackets":
		s.handleTaxBrackets(w, r)
	case "/api/standard-deductions":
		s.handleStandardDeductions(w, r)
	case "/api/retirement-limits":
		s.handleRetirementLimits(w, r)
	case "/api/salt-history":
		s.handleSaltHistory(w, r)
	case "/api/new-provisions":
		s.handleNewProvisions(w, r)
	case "/api/government-references":
		s.handleGovernmentReferences(w, r)
	case "/api/entity-impacts":
		s.handleEntityImpacts(w, r)
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
	}
}

func (s *HTTPServer) handleGuide(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && r.URL.Path == "/api/guide" {
		writeJSON(w, http.StatusOK, map[string]any{"sections": s.service.GuideTree()})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/guide/section-ids" {
		writeJSON(w, http.StatusOK, map[string]any{"sectionIds": s.service.GuideSectionIDs()})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/guide/search" {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if len(query) < 3 {
			writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": []content.Section{}})
			return
		}
		results := s.service.GuideSearch(query)
		for i := range results {
			results[i].Content = content.Highlight(results[i].Content, query)
		}
		writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": results})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/guide/history" {
		limit := 20
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		commits, err := s.service.GuideHistory(limit)
		if err != nil {
			status, code, message := mapError(err)
			writeError(w, status, code, message)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"history": commits})
		return
	}

	if r.URL.Path == "/api/guide/sections" {
		s.handleGuideSections(w, r)
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
}

func (s *HTTPServer) handleGuideSections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Section id is required")
			return
		}
		var payload struct {
			Title   *string `json:"title"`
			Content *string `json:"content"`
			Chart   *string `json:"chart"`
		}
		if err := decodeBody(r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		updated, ok := s.service.GuideUpdateSection(id, content.SectionUpdate{
			Title:   payload.Title,
			Content: payload.Content,
			Chart:   payload.Chart,
		})
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Section not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"section": updated})
		return

	case http.MethodDelete:
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Section id is required")
			return
		}
		if !s.service.GuideDeleteSection(id) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Section not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deletedId": id})
		return

	case http.MethodPost:
		parentID := strings.TrimSpace(r.URL.Query().Get("parentId"))
		if parentID == "" {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Parent section id is required")
			return
		}
		created, ok := s.service.GuideAddSubsection(parentID)
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Parent section not found")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"section": created})
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
		return
	}

	var format export.Format
	switch strings.TrimPrefix(r.URL.Path, "/api/export/") {
	case "markdown":
		format = export.FormatMarkdown
	case "pdf":
		format = export.FormatPDF
	case "docx":
		format = export.FormatDOCX
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
		return
	}

	result, err := s.service.Export(r.Context(), format)
	if err != nil {
		if errors.Is(err, export.ErrPDFDependencyMissing) || errors.Is(err, export.ErrDOCXDependencyMissing) {
			writeError(w, http.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", err.Error())
			return
		}
		status, code, message := mapError(err)
		writeError(w, status, code, message)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=\""+result.Filename+"\"")
	w.Header().Set("Content-Type", result.MimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError emits the error body. Code is omitted entirely when empty; a few
// responses historically shipped without one.
func writeError(w http.ResponseWriter, status int, code, message string) {
	response := map[string]any{
		"error": message,
	}
	if code != "" {
		response["code"] = code
	}
	writeJSON(w, status, response)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, http.ErrBodyReadAfterClose) {
			return nil
		}
		return errors.New("invalid JSON body")
	}
	return nil
}

// idParam parses the id query parameter. An absent or malformed value maps to
// the INVALID_ID contract shared by every resource.
func idParam(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func hasIDParam(r *http.Request) bool {
	return r.URL.Query().Has("id")
}

// pagination reads limit/offset with the shared defaults: limit 50 capped at
// 100, offset 0. Malformed values fall back to the defaults.
func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}
	offset = 0
	if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}
