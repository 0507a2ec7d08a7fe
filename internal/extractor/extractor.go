// Package extractor sends uploaded statement documents to the extraction service.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/config"
	"github.com/drivahub/drivahub/pkg/clients"
)

const (
	maxRetries   = 3
	extractPath  = "/api/extract"
	fileField    = "file"
	defaultRetry = time.Second * 1
)

var (
	ErrTransport = errors.New("extraction service is unavailable")
	ErrRejected  = errors.New("extraction service rejected the document")
)

type Service struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:           cfg.ExtractorAddress + extractPath,
		client:        client,
		retryInterval: defaultRetry,
	}
}

// Extract uploads one document and returns the raw response body.
func (s *Service) Extract(ctx context.Context, filename string, content []byte) ([]byte, error) {
	body, contentType, err := multipartBody(filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	headers := http.Header{"Content-Type": []string{contentType}}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Post(ctx, s.url, headers, body)
		wait := s.retryInterval * time.Duration(attempt)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
		case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
			zap.L().Info("document extracted", zap.String("file", filename), zap.Int("attempt", attempt))
			return respBody, nil
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited")
			wait = retryAfter(respHeaders, wait)
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("unexpected status code %d", statusCode)
		default:
			zap.L().Warn("document rejected by extraction service", zap.String("file", filename), zap.Int("status", statusCode))
			return nil, fmt.Errorf("%w: status %d", ErrRejected, statusCode)
		}

		zap.L().Warn("extraction attempt failed",
			zap.String("file", filename),
			zap.Int("attempt", attempt),
			zap.Duration("retryAfter", wait),
			zap.Error(lastErr),
		)
		if attempt == maxRetries {
			break
		}
		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrTransport, maxRetries, lastErr)
}

func multipartBody(filename string, content []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
