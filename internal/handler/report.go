package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// ReportTable is the JSON form of a report (?format=json).
type ReportTable struct {
	Report  string     `json:"report"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// GetReport handles GET /reports/{kind}.
// Returns CSV as a file download by default; ?format=json returns the same
// table as JSON. Optional ?from= and ?to= bound the half-open date range.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "report not found")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "format must be csv or json")
		return
	}
	from, err := queryDate(r, "from", false)
	if err != nil {
		paramError(w, err)
		return
	}
	to, err := queryDate(r, "to", false)
	if err != nil {
		paramError(w, err)
		return
	}

	rep, err := s.reports.Build(r.Context(), kind, domain.DateRange{From: from, To: to})
	if err != nil {
		s.writeServiceError(w, r, err, "report not found")
		return
	}

	if format == "json" {
		writeJSON(w, http.StatusOK, ReportTable{Report: string(rep.Kind), Columns: rep.Columns, Rows: rep.Rows})
		return
	}

	body, err := encodeCSV(rep.Columns, rep.Rows)
	if err != nil {
		s.writeServiceError(w, r, err, "report not found")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kind.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// encodeCSV writes a header line of column names followed by one line per
// row. Lines are joined by "\n" with no trailing newline. Fields containing
// commas, quotes or line breaks are quoted.
func encodeCSV(columns []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
