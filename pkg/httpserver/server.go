// Package httpserver exposes the comparison pipeline over HTTP: upload two
// PDFs, get back a stored report, re-render or export it later.
package httpserver

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
	"github.com/gautamprafful007/PDF-Comparator/internal/exporter"
	"github.com/gautamprafful007/PDF-Comparator/internal/extractor"
	"github.com/gautamprafful007/PDF-Comparator/internal/renderer"
	"github.com/gautamprafful007/PDF-Comparator/internal/report"
	"github.com/gautamprafful007/PDF-Comparator/pkg/logging"
)

const BasePath = "/api/v1"

// Server handles comparison requests against a report store.
type Server struct {
	store          *report.Store
	port           int
	maxUploadBytes int64
}

// NewServer creates a new comparison server.
func NewServer(store *report.Store, port, maxUploadMB int) *Server {
	return &Server{
		store:          store,
		port:           port,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// Handler builds the route table. Exposed separately from Start so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(BasePath+"/health", s.handleHealth)
	mux.HandleFunc(BasePath+"/compare", s.handleCompare)
	mux.HandleFunc(BasePath+"/reports", s.handleListReports)
	mux.HandleFunc(BasePath+"/reports/", s.handleReportRoutes)
	return &loggedServeMux{mux: mux}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}
	logging.Log.Infof("Comparison server starting on port %d", s.port)
	return server.ListenAndServe()
}

type loggedServeMux struct {
	mux *http.ServeMux
}

func (l *loggedServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logging.Log.Debugf("%s %s", r.Method, r.URL.Path)
	l.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCompare handles POST /api/v1/compare: multipart upload of pdf1 and
// pdf2, full pipeline run, persisted report in the response.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid multipart upload: "+err.Error())
		return
	}

	text1, name1, ok := s.extractUpload(w, r, "pdf1")
	if !ok {
		return
	}
	text2, name2, ok := s.extractUpload(w, r, "pdf2")
	if !ok {
		return
	}

	records := comparator.Compare(text1, text2)
	summary := comparator.Summarize(records)
	res := report.NewResult(name1, name2, records, summary)

	if err := s.store.Put(res); err != nil {
		logging.Log.Errorf("failed to store report: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to store report")
		return
	}

	logging.Log.Infof("Stored comparison report %s (%s vs %s, %d records)",
		res.ID, name1, name2, len(res.Records))
	WriteJSONResponse(w, http.StatusCreated, res)
}

// extractUpload pulls one uploaded PDF out of the form and runs text
// extraction on it. Failures are written to the response; the bool reports
// whether extraction succeeded.
func (s *Server) extractUpload(w http.ResponseWriter, r *http.Request, field string) (string, string, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Missing uploaded file %q", field))
		return "", "", false
	}
	defer file.Close()

	text, err := extractUploadedText(file, header.Filename)
	switch {
	case errors.Is(err, extractor.ErrEncrypted):
		WriteErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("%s is encrypted and cannot be processed", header.Filename))
		return "", "", false
	case errors.Is(err, extractor.ErrNoText):
		WriteErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("No text could be extracted from %s; it might be a scanned document", header.Filename))
		return "", "", false
	case err != nil:
		WriteErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Failed to read %s: %v", header.Filename, err))
		return "", "", false
	}
	return text, header.Filename, true
}

// extractUploadedText spools the upload to a temp file for the extractor,
// which reads PDFs from disk.
func extractUploadedText(file multipart.File, name string) (string, error) {
	tmp, err := os.CreateTemp("", "pdfcompare-upload-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		return "", fmt.Errorf("failed to spool upload %s: %w", name, err)
	}
	return extractor.ExtractText(tmp.Name())
}

// handleListReports handles GET /api/v1/reports.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	metas, err := s.store.List()
	if err != nil {
		logging.Log.Errorf("failed to list reports: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}
	if metas == nil {
		metas = []report.Meta{}
	}
	WriteJSONResponse(w, http.StatusOK, metas)
}

// handleReportRoutes handles report-specific routes:
//
//	GET    /api/v1/reports/{id}
//	DELETE /api/v1/reports/{id}
//	GET    /api/v1/reports/{id}/view?side=old|new
//	GET    /api/v1/reports/{id}/export?format=html|pdf
func (s *Server) handleReportRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, BasePath+"/reports/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if parts[0] == "" {
		WriteErrorResponse(w, http.StatusNotFound, "Invalid report route")
		return
	}
	id := parts[0]

	res, err := s.store.Get(id)
	if errors.Is(err, report.ErrNotFound) {
		WriteErrorResponse(w, http.StatusNotFound, "Report not found: "+id)
		return
	}
	if err != nil {
		logging.Log.Errorf("failed to load report %s: %v", id, err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load report")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			WriteJSONResponse(w, http.StatusOK, res)
		case http.MethodDelete:
			if err := s.store.Delete(id); err != nil {
				WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete report")
				return
			}
			WriteJSONResponse(w, http.StatusOK, map[string]string{"deleted": id})
		default:
			WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	switch parts[1] {
	case "view":
		s.handleView(w, r, res)
	case "export":
		s.handleExport(w, r, res)
	default:
		WriteErrorResponse(w, http.StatusNotFound, "Invalid report route")
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request, res report.Result) {
	if r.Method != http.MethodGet {
		WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	side := renderer.SideNew
	if r.URL.Query().Get("side") == string(renderer.SideOld) {
		side = renderer.SideOld
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, renderer.Highlight(res.Records, side))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, res report.Result) {
	if r.Method != http.MethodGet {
		WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	switch format := r.URL.Query().Get("format"); format {
	case "", "html":
		body, filename := exporter.HTML(res)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	case "pdf":
		body, filename, err := exporter.PDF(res)
		if err != nil {
			logging.Log.Errorf("failed to export report %s: %v", res.ID, err)
			WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate PDF export")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	default:
		WriteErrorResponse(w, http.StatusBadRequest, "Unknown export format: "+format)
	}
}
