package models

import (
	"net/http/httptest"
	"testing"
)

func TestParseReportParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/compliance/logs/report", nil)
	params, err := ParseReportParams(r)
	if err != nil {
		t.Fatalf("ParseReportParams: %v", err)
	}
	if params.Page != 1 || params.Limit != 50 {
		t.Errorf("defaults = page %d limit %d, expected 1/50", params.Page, params.Limit)
	}
	if params.SortBy != "created_at" || params.SortDir != "desc" {
		t.Errorf("defaults = sort %s %s, expected created_at desc", params.SortBy, params.SortDir)
	}
	if err := params.Validate(); err != nil {
		t.Errorf("default params failed validation: %v", err)
	}
}

func TestReportParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"default sort", "", false},
		{"sort by log date", "sort_by=log_date&sort_dir=asc", false},
		{"sort by log type", "sort_by=log_type", false},
		{"sort by shift", "sort_by=shift", false},
		{"unknown column", "sort_by=photo_url", true},
		{"column with trailing expression", "sort_by=created_at--", true},
		{
			// ORDER BY is built from SortBy, so a subquery must never
			// survive validation
			name:    "subquery in sort column",
			query:   "sort_by=(SELECT%20CASE%20WHEN%20(SELECT%20count(*)%20FROM%20users)>0%20THEN%20created_at%20ELSE%20log_date%20END)",
			wantErr: true,
		},
		{"bad sort direction", "sort_dir=descending", true},
		{"sort direction expression", "sort_dir=desc%20nulls%20last", true},
		{"limit too large", "limit=501", true},
		{"bad from date", "from=30-01-2026", true},
		{"valid date window", "from=2026-01-01&to=2026-01-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/compliance/logs/report?"+tt.query, nil)
			params, err := ParseReportParams(r)
			if err != nil {
				t.Fatalf("ParseReportParams: %v", err)
			}
			if err := params.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
