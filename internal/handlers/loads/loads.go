package loads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/service/loadservice"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=loads.go -destination=mock_loads.go -package=loads

type Service interface {
	AddLoad(ctx context.Context, userID int, draft domain.LoadDraft) (*domain.Load, error)
	GetLoads(ctx context.Context, userID int, query string) ([]domain.Load, error)
}

type LoadHandler struct {
	loadService Service
}

func New(loadService Service) *LoadHandler {
	return &LoadHandler{
		loadService: loadService,
	}
}

// AddLoad godoc
//
//	@Summary		Add a load
//	@Description	Record a single haul entered by hand. A missing date means today.
//	@Tags			Loads
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddLoadRequestDTO	true	"Load"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.LoadResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid load"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loads [post]
func (h *LoadHandler) AddLoad(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddLoadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	load, err := h.loadService.AddLoad(r.Context(), userID, domain.LoadDraft{
		Pickup:  req.Pickup,
		Dropoff: req.Dropoff,
		Amount:  req.Amount,
		Date:    req.Date,
		Miles:   req.Miles,
	})
	if err != nil {
		if errors.Is(err, loadservice.ErrInvalidLoad) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLoadResponse(*load))
}

// GetLoads godoc
//
//	@Summary		List loads
//	@Description	Return the loads of the authorized driver. q filters by id, pickup or dropoff.
//	@Tags			Loads
//	@Produce		json
//	@Param			q	query	string	false	"Search text"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LoadResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loads [get]
func (h *LoadHandler) GetLoads(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	loads, err := h.loadService.GetLoads(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(loads) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoadsResponse(loads))
}
