package services

import (
	"context"

	"github.com/SscSPs/forex_history_app/internal/dto"
)

// ForexSvcFacade serves stored forex history to API consumers.
type ForexSvcFacade interface {
	// GetForexData resolves the request's period against now, reads the
	// stored series for the pair and computes the conversion amount from the
	// latest close rate. Returns apperrors.ErrNotFound when no data covers
	// the period and apperrors.ErrValidation on a bad period label.
	GetForexData(ctx context.Context, req dto.ForexDataRequest) (*dto.ForexDataResponse, error)
}
