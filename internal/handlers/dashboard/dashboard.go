package dashboard

import (
	"context"
	"net/http"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	GetStats(ctx context.Context, userID int, period domain.Period) (*domain.DashboardStats, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats godoc
//
//	@Summary		Dashboard statistics
//	@Description	Aggregate the statements of the authorized driver over a rolling window
//	@Tags			Dashboard
//	@Produce		json
//	@Param			period	query	string	false	"Weekly, Monthly or Yearly"	default(Weekly)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid period"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/dashboard [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid period, use Weekly, Monthly or Yearly")
		return
	}

	stats, err := h.dashboardService.GetStats(r.Context(), userID, period)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Period:        string(period),
		TotalEarnings: stats.TotalEarnings,
		NetIncome:     stats.NetIncome,
		RPM:           stats.RPM,
		RPMChange:     stats.RPMChange,
		TotalMiles:    stats.TotalMiles,
		DeadheadMiles: stats.DeadheadMiles,
	})
}
