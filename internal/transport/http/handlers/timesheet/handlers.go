package timesheethandler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/yuhaowen84/timesheet-app/internal/domain/timesheet"
	"github.com/yuhaowen84/timesheet-app/internal/transport/http/api"
	"github.com/yuhaowen84/timesheet-app/internal/transport/http/middleware"
)

type Handler struct {
	Engine   *timesheet.Engine
	validate *validator.Validate
}

func NewHandler(engine *timesheet.Engine) *Handler {
	return &Handler{
		Engine:   engine,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// fortnightPayload is the wire form of one engine invocation: a start date
// plus exactly fourteen day records. Days decode as pointers so a missing
// record is distinguishable from a blank one.
type fortnightPayload struct {
	StartDate string                `json:"startDate" validate:"required"`
	Days      []*timesheet.DayInput `json:"days" validate:"required"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/timesheets", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Post("/export/csv", h.handleExportCSV)
		r.Post("/export/pdf", h.handleExportPDF)
	})
	r.Get("/rates", h.handleRates)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.computeFromRequest(w, r)
	if !ok {
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRates(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Rates    timesheet.RateTable `json:"rates"`
		Holidays []string            `json:"holidays"`
	}{
		Rates:    h.Engine.Rates(),
		Holidays: h.Engine.Holidays(),
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

// computeFromRequest decodes, validates and runs the engine, writing the
// error response itself when anything is wrong.
func (h *Handler) computeFromRequest(w http.ResponseWriter, r *http.Request) (*timesheet.Fortnight, bool) {
	reqID := middleware.GetRequestID(r.Context())

	var payload fortnightPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", reqID)
		return nil, false
	}
	if err := h.validate.Struct(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", validationMessage(err), reqID)
		return nil, false
	}

	start, err := timesheet.ParseStartDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_start_date", fmt.Sprintf("startDate %q is not a date", payload.StartDate), reqID)
		return nil, false
	}

	days := make([]timesheet.DayInput, len(payload.Days))
	for i, day := range payload.Days {
		if day == nil {
			verr := &timesheet.ValidationError{Day: i + 1, Field: "day", Reason: "record is missing"}
			api.Fail(w, http.StatusBadRequest, "invalid_day", verr.Error(), reqID)
			return nil, false
		}
		days[i] = *day
	}

	result, err := h.Engine.CalculateFortnight(start, days)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_fortnight", err.Error(), reqID)
		return nil, false
	}
	return result, true
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	result, ok := h.computeFromRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=fortnight-"+result.StartDate+".csv")
	writer := csv.NewWriter(w)

	header := []string{
		"weekday", "date", "rostered_on", "actual_on", "rostered_off", "actual_off",
		"worked", "extra", "sick", "unit", "penalty", "special", "holiday",
		"ot_rate", "penalty_rate", "special_loading", "sick_rate", "daily_rate",
		"loading", "daily_count",
	}
	if err := writer.Write(header); err != nil {
		slog.Warn("csv header write failed", "err", err)
	}

	for _, day := range result.Days {
		row := []string{
			day.Weekday, day.Date, day.RosteredOn, day.ActualOn, day.RosteredOff,
			day.ActualOff, day.Worked, day.Extra, strconv.FormatBool(day.Sick),
			money(day.Unit), day.Penalty, day.Special, day.Holiday,
			money(day.OTRate), money(day.PenaltyRate), money(day.SpecialLoading),
			money(day.SickRate), money(day.DailyRate), money(day.Loading),
			money(day.DailyCount),
		}
		if err := writer.Write(row); err != nil {
			slog.Warn("csv row write failed", "err", err)
		}
	}

	totals := result.Totals
	totalRow := []string{
		"TOTAL", "", "", "", "", "", "", "", "", "", "", "", "",
		money(totals.OTRate), money(totals.PenaltyRate), money(totals.SpecialLoading),
		money(totals.SickRate), money(totals.DailyRate), money(totals.Loading),
		money(totals.DailyCount),
	}
	if err := writer.Write(totalRow); err != nil {
		slog.Warn("csv totals write failed", "err", err)
	}
	if totals.DeductionApplied {
		deductionRow := []string{
			"DEDUCTION", "", "", "", "", "", "", "", "", "", "", "", "",
			"", "", "", "", "", "", money(-totals.Deduction),
		}
		if err := writer.Write(deductionRow); err != nil {
			slog.Warn("csv deduction write failed", "err", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Warn("csv flush failed", "err", err)
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("field %s failed on %s", errs[0].Field(), errs[0].Tag())
	}
	return err.Error()
}
