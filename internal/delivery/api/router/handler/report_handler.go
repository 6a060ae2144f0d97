package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves the daily close and sales reports
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

type TodayResponse struct {
	Date      string           `json:"date"`
	Orders    []*OrderResponse `json:"orders"`
	Total     string           `json:"total"`
	Finalized bool             `json:"finalized"`
}

type GeneralReportResponse struct {
	Reports    []*ReportResponse `json:"reports"`
	GrandTotal string            `json:"grandTotal"`
}

type DayDetailResponse struct {
	Date   string           `json:"date"`
	Report *ReportResponse  `json:"report"`
	Orders []*OrderResponse `json:"orders"`
	Total  string           `json:"total"`
}

func (h *ReportHandler) Today(c echo.Context) error {
	summary, err := h.reportUC.TodaySummary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TodayResponse{
		Date:      summary.Date,
		Orders:    newOrderResponses(summary.Orders),
		Total:     money(summary.Total),
		Finalized: summary.Finalized,
	})
}

func (h *ReportHandler) Finalize(c echo.Context) error {
	report, err := h.reportUC.FinalizeDay(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newReportResponse(report))
}

func (h *ReportHandler) General(c echo.Context) error {
	general, err := h.reportUC.GeneralReport(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reports := make([]*ReportResponse, 0, len(general.Reports))
	for _, report := range general.Reports {
		reports = append(reports, newReportResponse(report))
	}

	return response.Success(c, http.StatusOK, GeneralReportResponse{
		Reports:    reports,
		GrandTotal: money(general.GrandTotal),
	})
}

func (h *ReportHandler) DayDetail(c echo.Context) error {
	detail, err := h.reportUC.DayDetail(c.Request().Context(), c.Param("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DayDetailResponse{
		Date:   detail.Date,
		Report: newReportResponse(detail.Report),
		Orders: newOrderResponses(detail.Orders),
		Total:  money(detail.Total),
	})
}
