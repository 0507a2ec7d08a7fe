package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/drivahub/drivahub/internal/service/reportservice"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=reports.go -destination=mock_reports.go -package=reports

type Service interface {
	Export(ctx context.Context, userID int, format string) (*reportservice.Document, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Export godoc
//
//	@Summary		Export statements and loads
//	@Description	Download every statement and load of the authorized driver with period summaries
//	@Tags			Statements
//	@Produce		application/pdf
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			format	query	string	false	"pdf or xlsx"	default(pdf)
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Unsupported format"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/statements/export [get]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}

	doc, err := h.reportService.Export(r.Context(), userID, format)
	if err != nil {
		if errors.Is(err, reportservice.ErrUnsupportedFormat) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithFile(w, doc.ContentType, doc.Filename, doc.Body)
}
