package dto

import (
	"time"

	"github.com/drivahub/drivahub/internal/domain"
)

type AddLoadRequestDTO struct {
	Pickup  string  `json:"pickup" example:"Dallas, TX"`
	Dropoff string  `json:"dropoff" example:"Houston, TX"`
	Amount  float64 `json:"amount" example:"640"`
	Date    string  `json:"date,omitempty" example:"2024-05-08"`
	Miles   float64 `json:"miles" example:"240"`
}

type LoadResponseDTO struct {
	ID        string  `json:"id" example:"9b2d7c4e-1f3a-4e8b-b6d2-5c0a1e9f7b33"`
	Pickup    string  `json:"pickup" example:"Dallas, TX"`
	Dropoff   string  `json:"dropoff" example:"Houston, TX"`
	Amount    float64 `json:"amount" example:"640"`
	Date      string  `json:"date" example:"2024-05-08"`
	Miles     float64 `json:"miles" example:"240"`
	CreatedAt string  `json:"created_at" example:"2024-05-08T16:09:57Z"`
}

func NewLoadResponse(l domain.Load) LoadResponseDTO {
	return LoadResponseDTO{
		ID:        l.ID,
		Pickup:    l.Pickup,
		Dropoff:   l.Dropoff,
		Amount:    l.Amount,
		Date:      l.Date,
		Miles:     l.Miles,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func NewLoadsResponse(loads []domain.Load) []LoadResponseDTO {
	response := make([]LoadResponseDTO, 0, len(loads))
	for _, l := range loads {
		response = append(response, NewLoadResponse(l))
	}
	return response
}
