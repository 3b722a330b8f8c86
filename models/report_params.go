package models

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ReportParams captures the common list-endpoint query surface: paging,
// date range, sorting, a free-text search term and exact-match column
// filters. Handlers add scoping filters (organization_id, log_type)
// before executing.
type ReportParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
	Search  string
	From    string // inclusive, "2006-01-02"
	To      string // inclusive, "2006-01-02"
	Filters map[string]string
}

// ParseReportParams reads ReportParams from the request query string.
func ParseReportParams(r *http.Request) (*ReportParams, error) {
	q := r.URL.Query()

	params := &ReportParams{
		Page:    1,
		Limit:   50,
		SortBy:  "created_at",
		SortDir: "desc",
		Search:  q.Get("q"),
		From:    q.Get("from"),
		To:      q.Get("to"),
		Filters: map[string]string{},
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		params.Page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l > 0 {
		params.Limit = l
	}
	if s := q.Get("sort_by"); s != "" {
		params.SortBy = s
	}
	if d := q.Get("sort_dir"); d != "" {
		params.SortDir = d
	}

	return params, nil
}

// sortableColumns is the closed set of ORDER BY targets. SortBy is
// interpolated into SQL, so anything outside this set is rejected.
var sortableColumns = map[string]bool{
	"created_at": true,
	"log_date":   true,
	"log_type":   true,
	"shift":      true,
}

// Validate rejects parameter combinations the query builder cannot express.
func (p *ReportParams) Validate() error {
	if p.Limit > 500 {
		return errors.New("limit must not exceed 500")
	}
	if !sortableColumns[p.SortBy] {
		return fmt.Errorf("invalid sort column %q", p.SortBy)
	}
	if p.SortDir != "asc" && p.SortDir != "desc" {
		return fmt.Errorf("invalid sort direction %q", p.SortDir)
	}
	for _, d := range []string{p.From, p.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	return nil
}

// ReportResponse is the paginated list envelope shared by report endpoints.
type ReportResponse struct {
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Data  interface{} `json:"data"`
}

// ReportService runs ReportParams against one model's table.
type ReportService struct {
	db    *gorm.DB
	model interface{}

	dateColumn    string
	searchColumns []string
}

// NewReportService builds a report service for the given model. dateColumn
// scopes From/To; searchColumns take the case-insensitive Search term.
func NewReportService(db *gorm.DB, model interface{}, dateColumn string, searchColumns ...string) *ReportService {
	return &ReportService{
		db:            db,
		model:         model,
		dateColumn:    dateColumn,
		searchColumns: searchColumns,
	}
}

// Query builds the scoped, filtered, ordered query without pagination.
// Export handlers use it directly to stream every matching row.
func (s *ReportService) Query(params *ReportParams) *gorm.DB {
	query := s.db.Model(s.model)

	for column, value := range params.Filters {
		query = query.Where(column+" = ?", value)
	}
	if params.From != "" {
		query = query.Where(s.dateColumn+" >= ?", params.From)
	}
	if params.To != "" {
		query = query.Where(s.dateColumn+" <= ?", params.To)
	}
	if params.Search != "" && len(s.searchColumns) > 0 {
		pattern := "%" + params.Search + "%"
		clause := ""
		args := make([]interface{}, 0, len(s.searchColumns))
		for i, col := range s.searchColumns {
			if i > 0 {
				clause += " OR "
			}
			clause += col + " ILIKE ?"
			args = append(args, pattern)
		}
		query = query.Where(clause, args...)
	}

	return query.Order(params.SortBy + " " + params.SortDir)
}

// GetReport executes the query with pagination and returns the envelope.
// dest must be a pointer to a slice of the model type.
func (s *ReportService) GetReport(params *ReportParams, dest interface{}) (*ReportResponse, error) {
	query := s.Query(params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (params.Page - 1) * params.Limit
	if err := query.Limit(params.Limit).Offset(offset).Find(dest).Error; err != nil {
		return nil, err
	}

	return &ReportResponse{
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Data:  dest,
	}, nil
}
