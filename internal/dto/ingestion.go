package dto

import "github.com/drivahub/drivahub/internal/domain"

type IngestionResponseDTO struct {
	Statement *StatementResponseDTO `json:"statement,omitempty"`
	Loads     []LoadResponseDTO     `json:"loads"`
}

func NewIngestionResponse(in domain.Ingestion) IngestionResponseDTO {
	response := IngestionResponseDTO{Loads: NewLoadsResponse(in.Loads)}
	if in.Statement != nil {
		statement := NewStatementResponse(*in.Statement)
		response.Statement = &statement
	}
	return response
}
