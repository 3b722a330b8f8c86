package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

// GetLogReport returns a paginated, filterable list of compliance logs
// for the organization. Backs the web client's log browser.
func GetLogReport(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	params, err := models.ParseReportParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params.Filters["organization_id"] = orgID.String()
	if logType := r.URL.Query().Get("log_type"); logType != "" {
		params.Filters["log_type"] = logType
	}

	service := models.NewReportService(config.DB, models.ComplianceLog{},
		"log_date", "staff_name", "notes", "created_by_name")

	var logs []models.ComplianceLog
	response, err := service.GetReport(params, &logs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ExportLogsToExcel exports the organization's compliance logs as an xlsx
// workbook, honoring the same filters as GetLogReport.
func ExportLogsToExcel(w http.ResponseWriter, r *http.Request) {
	logs, err := collectExportRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	excelFile, err := createLogWorkbook(logs)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("compliance_logs_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportLogsToCSV exports the organization's compliance logs as CSV.
func ExportLogsToCSV(w http.ResponseWriter, r *http.Request) {
	logs, err := collectExportRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csvData, err := createLogCSV(logs)
	if err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("compliance_logs_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))

	w.WriteHeader(http.StatusOK)
	w.Write(csvData)
}

// collectExportRows resolves the org scope and runs the unpaginated query.
func collectExportRows(r *http.Request) ([]models.ComplianceLog, error) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization not resolved")
	}

	params, err := models.ParseReportParams(r)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	params.Filters["organization_id"] = orgID.String()
	if logType := r.URL.Query().Get("log_type"); logType != "" {
		params.Filters["log_type"] = logType
	}
	// default the export window to the last 30 days
	if params.From == "" && params.To == "" {
		params.From = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}

	service := models.NewReportService(config.DB, models.ComplianceLog{},
		"log_date", "staff_name", "notes", "created_by_name")

	var logs []models.ComplianceLog
	if err := service.Query(params).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

var exportHeaders = []string{
	"Date", "Shift", "Log Type", "Temperature (°C)", "Sanitiser (ppm)",
	"Safe Zone", "Visual Check", "Corrective Action", "Corrective Notes",
	"Notes", "Staff Name", "Fit To Work", "Recorded By", "Recorded At",
}

func exportRecord(l models.ComplianceLog) []string {
	return []string{
		l.LogDate,
		l.Shift,
		l.LogType,
		formatFloat(l.TemperatureReading),
		formatFloat(l.SanitiserConcentrationPPM),
		formatBool(l.IsWithinSafeZone),
		formatBool(l.VisualCheckPassed),
		fmt.Sprintf("%v", l.RequiresCorrectiveAction),
		formatString(l.CorrectiveActionNotes),
		formatString(l.Notes),
		formatString(l.StaffName),
		formatBool(l.StaffFitToWork),
		l.CreatedByName,
		l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// createLogWorkbook generates an xlsx workbook from log rows
func createLogWorkbook(logs []models.ComplianceLog) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Compliance Logs"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	// Title and generation timestamp
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Compliance Logs")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	// Headers (row 4)
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), 18)
	}

	// Data rows
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	for rowIdx, l := range logs {
		for colIdx, value := range exportRecord(l) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	// Delete default Sheet1 if we created a new one
	f.DeleteSheet("Sheet1")

	return f, nil
}

// createLogCSV generates CSV bytes from log rows
func createLogCSV(logs []models.ComplianceLog) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write(exportHeaders)
	for _, l := range logs {
		writer.Write(exportRecord(l))
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// Helper functions

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "yes"
	}
	return "no"
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}
