package dto

import (
	"time"

	"github.com/drivahub/drivahub/internal/domain"
)

type AddStatementRequestDTO struct {
	Date          string   `json:"date" example:"2024-05-08"`
	Amount        float64  `json:"amount" example:"2450.5"`
	Miles         float64  `json:"miles" example:"980"`
	DeadheadMiles *float64 `json:"deadhead_miles,omitempty" example:"120"`
	Type          string   `json:"type,omitempty" example:"regular" enums:"regular,deadhead"`
}

type StatementResponseDTO struct {
	ID            string   `json:"id" example:"3f1c2a9e-8d4b-4a57-9c1e-2b6f0e7d5a10"`
	Date          string   `json:"date" example:"2024-05-08"`
	Amount        float64  `json:"amount" example:"2450.5"`
	Miles         float64  `json:"miles" example:"980"`
	DeadheadMiles *float64 `json:"deadhead_miles,omitempty" example:"120"`
	Type          string   `json:"type" example:"regular"`
	CreatedAt     string   `json:"created_at" example:"2024-05-08T16:09:57Z"`
}

func NewStatementResponse(s domain.Statement) StatementResponseDTO {
	return StatementResponseDTO{
		ID:            s.ID,
		Date:          s.Date,
		Amount:        s.Amount,
		Miles:         s.Miles,
		DeadheadMiles: s.DeadheadMiles,
		Type:          string(s.Type),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}
