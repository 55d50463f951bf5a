package dashboardhandler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/dashboard"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Service *dashboard.Service
	Logger  *zap.Logger
}

func NewHandler(service *dashboard.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Service: service, Logger: logger}
}

type AttendanceResponse struct {
	dashboard.AttendanceSummary
	Chart []dashboard.ChartDay `json:"chart"`
}

type ReviewsResponse struct {
	AsOf          calendar.Date               `json:"asOf"`
	ThresholdDays int                         `json:"thresholdDays"`
	Reviews       []dashboard.CompensationRow `json:"reviews"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Get("/employees", h.handleEmployees)
		r.Get("/attendance", h.handleAttendance)
		r.Get("/payroll", h.handlePayroll)
		r.Get("/compensation", h.handleCompensation)
		r.Get("/compensation/reviews", h.handleReviews)
		r.Get("/benefits", h.handleBenefits)
	})
	r.Get("/payroll/{recordID}/payslip", h.handlePayslip)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, overview, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := dashboard.DirectoryFilter{
		Status: hr.EmploymentStatus(strings.TrimSpace(query.Get("status"))),
		Query:  strings.TrimSpace(query.Get("q")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		api.FailWithDetails(w, http.StatusBadRequest, "invalid_status", "unknown employment status",
			map[string]any{"param": "status", "allowed": hr.EmploymentStatuses}, middleware.GetRequestID(r.Context()))
		return
	}
	dir, err := h.Service.Employees(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, dir, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r, "date")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	summary, chart, err := h.Service.Attendance(r.Context(), date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, AttendanceResponse{AttendanceSummary: summary, Chart: chart}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Payroll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCompensation(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r, "asOf")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	summary, err := h.Service.Compensation(r.Context(), asOf)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReviews(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r, "asOf")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if asOf.IsZero() {
		asOf = h.Service.Today()
	}
	reviews, err := h.Service.ReviewsDue(r.Context(), asOf)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, ReviewsResponse{AsOf: asOf, ThresholdDays: h.Service.ReviewThreshold(), Reviews: reviews}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBenefits(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Benefits(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")
	record, err := h.Service.PayrollRecord(r.Context(), recordID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := payroll.RenderPayslip(&buf, record, h.Service.Today()); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+recordID+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Warn("write payslip failed", zap.String("recordId", recordID), zap.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	var dateErr *calendar.InvalidDateError
	switch {
	case errors.As(err, &dateErr):
		api.FailWithDetails(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD",
			map[string]string{"value": dateErr.Value}, reqID)
	case errors.Is(err, hr.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", reqID)
	default:
		h.Logger.Error("dashboard request failed", zap.String("path", r.URL.Path), zap.String("requestId", reqID), zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", reqID)
	}
}
