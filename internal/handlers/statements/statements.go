package statements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/service/statementservice"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=statements.go -destination=mock_statements.go -package=statements

type Service interface {
	AddStatement(ctx context.Context, userID int, draft domain.StatementDraft) (*domain.Statement, error)
	GetStatements(ctx context.Context, userID int) ([]domain.Statement, error)
}

type StatementHandler struct {
	statementService Service
}

func New(statementService Service) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// AddStatement godoc
//
//	@Summary		Add a statement
//	@Description	Record a weekly statement entered by hand
//	@Tags			Statements
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddStatementRequestDTO	true	"Statement"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.StatementResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid statement"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/statements [post]
func (h *StatementHandler) AddStatement(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddStatementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	statement, err := h.statementService.AddStatement(r.Context(), userID, domain.StatementDraft{
		Date:          req.Date,
		Amount:        req.Amount,
		Miles:         req.Miles,
		DeadheadMiles: req.DeadheadMiles,
		Type:          domain.StatementType(req.Type),
	})
	if err != nil {
		if errors.Is(err, statementservice.ErrInvalidStatement) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewStatementResponse(*statement))
}

// GetStatements godoc
//
//	@Summary		List statements
//	@Description	Return the statements of the authorized driver, newest first
//	@Tags			Statements
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.StatementResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/statements [get]
func (h *StatementHandler) GetStatements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	statements, err := h.statementService.GetStatements(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(statements) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.StatementResponseDTO, 0, len(statements))
	for _, s := range statements {
		response = append(response, dto.NewStatementResponse(s))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
