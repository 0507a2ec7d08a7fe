package uploads

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/extractor"
	"github.com/drivahub/drivahub/internal/ingest"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/utils"
)

//go:generate mockgen -source=uploads.go -destination=mock_uploads.go -package=uploads

const (
	maxUploadSize = 10 << 20
	fileField     = "file"

	retryMessage = "Could not read the statement, please try again"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type Service interface {
	Ingest(ctx context.Context, userID int, filename string, content []byte) (*domain.Ingestion, error)
	IngestResponse(ctx context.Context, userID int, body []byte) (*domain.Ingestion, error)
}

type UploadHandler struct {
	ingestService Service
}

func New(ingestService Service) *UploadHandler {
	return &UploadHandler{
		ingestService: ingestService,
	}
}

// Upload godoc
//
//	@Summary		Upload a statement document
//	@Description	Send a statement PDF or photo to extraction and store the statement and loads found in it
//	@Tags			Statements
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"PDF, PNG or JPEG up to 10 MiB"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.IngestionResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing or oversized file"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		415	{object}	utils.Response	"Unsupported file type"
//	@Failure		422	{object}	utils.Response	"Statement could not be read"
//	@Failure		502	{object}	utils.Response	"Extraction service failed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/statements/upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	file, header, err := r.FormFile(fileField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.RespondWithError(w, http.StatusBadRequest, "File is larger than 10 MiB")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if !allowedExtensions[strings.ToLower(filepath.Ext(header.Filename))] {
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Only PDF, PNG and JPEG files are supported")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read file")
		return
	}
	if len(content) > maxUploadSize {
		utils.RespondWithError(w, http.StatusBadRequest, "File is larger than 10 MiB")
		return
	}
	if len(content) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "File is empty")
		return
	}

	ingestion, err := h.ingestService.Ingest(r.Context(), userID, filepath.Base(header.Filename), content)
	if err != nil {
		respondWithIngestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewIngestionResponse(*ingestion))
}

// Import godoc
//
//	@Summary		Import an extraction response
//	@Description	Store the statement and loads found in a raw extraction service response
//	@Tags			Statements
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	dto.IngestionResponseDTO
//	@Failure		400	{object}	utils.Response	"Failed to read request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Statement could not be read"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/statements/import [post]
func (h *UploadHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	ingestion, err := h.ingestService.IngestResponse(r.Context(), userID, body)
	if err != nil {
		respondWithIngestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewIngestionResponse(*ingestion))
}

func respondWithIngestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingest.ErrParse):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, retryMessage)
	case errors.Is(err, extractor.ErrTransport), errors.Is(err, extractor.ErrRejected):
		utils.RespondWithError(w, http.StatusBadGateway, "Extraction service failed, please try again later")
	default:
		zap.L().Error("ingestion failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
