package handlers

import (
	"net/http"

	"logistics-dispatch/internal/logx"
)

// ReportHandler serves the dashboard summary.
type ReportHandler struct {
	uc     reportUsecase
	logger logx.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(logger logx.Logger, uc reportUsecase) *ReportHandler {
	logger = logx.OrNop(logger)
	return &ReportHandler{uc: uc, logger: logger}
}

// Summary handles GET /reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.Summary(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, summaryToResponse(s))
}
