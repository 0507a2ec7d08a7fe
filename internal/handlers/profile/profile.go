package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/service/profileservice"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int, profile domain.Profile) (*domain.Profile, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
//
//	@Summary		Get driver profile
//	@Description	Return the name, company and phone of the authorized driver
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

// UpdateProfile godoc
//
//	@Summary		Update driver profile
//	@Description	Replace the name, company and phone of the authorized driver
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ProfileRequestDTO	true	"Profile"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid profile"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), userID, domain.Profile{
		DriverName:  req.DriverName,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profileservice.ErrInvalidProfile):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(p *domain.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		DriverName:  p.DriverName,
		CompanyName: p.CompanyName,
		Phone:       p.Phone,
	}
}
