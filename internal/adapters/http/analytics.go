package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func (rt *Router) analyticsMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := rt.analytics.Metrics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (rt *Router) analyticsExport(w http.ResponseWriter, r *http.Request) {
	candidates, evaluations, err := rt.analytics.ExportData(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	workbook, err := buildExportWorkbook(candidates, evaluations)
	if err != nil {
		writeError(w, fmt.Errorf("build export workbook: %w", err))
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="interview-report.xlsx"`)
	if err := workbook.Write(w); err != nil {
		slog.Error("write export workbook", "error", err)
	}
}

func buildExportWorkbook(candidates []domain.Candidate, evaluations []domain.Evaluation) (*excelize.File, error) {
	f := excelize.NewFile()

	const candidateSheet = "Candidates"
	if err := f.SetSheetName("Sheet1", candidateSheet); err != nil {
		return nil, err
	}
	header := []any{"ID", "Name", "Email", "Position", "Years Experience", "Skills", "Status", "Created At"}
	if err := f.SetSheetRow(candidateSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, c := range candidates {
		row := []any{
			c.ID,
			c.FullName(),
			c.Email,
			c.Position,
			c.YearsExperience,
			strings.Join(c.Skills, ", "),
			string(c.Status),
			c.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(candidateSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const evaluationSheet = "Evaluations"
	if _, err := f.NewSheet(evaluationSheet); err != nil {
		return nil, err
	}
	evalHeader := []any{"ID", "Interview ID", "Candidate ID", "Technical", "Communication", "Problem Solving", "Overall", "Recommendation", "Created At"}
	if err := f.SetSheetRow(evaluationSheet, "A1", &evalHeader); err != nil {
		return nil, err
	}
	for i, e := range evaluations {
		row := []any{
			e.ID,
			e.InterviewID,
			e.CandidateID,
			scoreCell(e.TechnicalScore),
			scoreCell(e.CommunicationScore),
			scoreCell(e.ProblemSolvingScore),
			scoreCell(e.OverallScore),
			string(e.Recommendation),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(evaluationSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func scoreCell(score *float64) any {
	if score == nil {
		return ""
	}
	return *score
}
