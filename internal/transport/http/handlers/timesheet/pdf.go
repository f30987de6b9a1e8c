package timesheethandler

import (
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"github.com/yuhaowen84/timesheet-app/internal/domain/timesheet"
	"github.com/yuhaowen84/timesheet-app/internal/transport/http/api"
	"github.com/yuhaowen84/timesheet-app/internal/transport/http/middleware"
)

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	result, ok := h.computeFromRequest(w, r)
	if !ok {
		return
	}

	pdf := buildFortnightPDF(result)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=fortnight-"+result.StartDate+".pdf")
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render pdf", middleware.GetRequestID(r.Context()))
	}
}

func buildFortnightPDF(result *timesheet.Fortnight) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(80, 10, "Fortnight Pay Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Period starting %s", result.StartDate))
	pdf.Ln(10)

	headers := []string{"Day", "Date", "Unit", "Penalty", "Special", "Holiday", "OT", "Penalty $", "Special $", "Sick $", "Daily $", "Loading", "Count"}
	widths := []float64{22, 22, 14, 20, 16, 16, 20, 20, 20, 20, 20, 20, 22}

	pdf.SetFont("Helvetica", "B", 9)
	for i, head := range headers {
		pdf.CellFormat(widths[i], 7, head, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, day := range result.Days {
		cells := []string{
			day.Weekday, day.Date,
			fmt.Sprintf("%.2f", day.Unit), day.Penalty, day.Special, day.Holiday,
			fmt.Sprintf("%.2f", day.OTRate), fmt.Sprintf("%.2f", day.PenaltyRate),
			fmt.Sprintf("%.2f", day.SpecialLoading), fmt.Sprintf("%.2f", day.SickRate),
			fmt.Sprintf("%.2f", day.DailyRate), fmt.Sprintf("%.2f", day.Loading),
			fmt.Sprintf("%.2f", day.DailyCount),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := result.Totals
	pdf.SetFont("Helvetica", "B", 9)
	totalCells := []string{
		"TOTAL", "", "", "", "", "",
		fmt.Sprintf("%.2f", totals.OTRate), fmt.Sprintf("%.2f", totals.PenaltyRate),
		fmt.Sprintf("%.2f", totals.SpecialLoading), fmt.Sprintf("%.2f", totals.SickRate),
		fmt.Sprintf("%.2f", totals.DailyRate), fmt.Sprintf("%.2f", totals.Loading),
		fmt.Sprintf("%.2f", totals.DailyCount),
	}
	for i, cell := range totalCells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	if totals.DeductionApplied {
		pdf.Cell(0, 8, fmt.Sprintf("No ADO taken this fortnight: %.2f deducted from the daily count total.", totals.Deduction))
	} else {
		pdf.Cell(0, 8, "ADO taken this fortnight: no deduction applied.")
	}
	return pdf
}
