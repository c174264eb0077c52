package pgsql

import (
	"context"
	"testing"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

// An empty batch must short-circuit before any pool interaction: the repository
// here has no pool at all, so reaching Begin would panic instead of returning.
func TestSaveRates_EmptyBatchIsANoOp(t *testing.T) {
	repo := NewPgxExchangeRateRepository(nil)

	assert.NoError(t, repo.SaveRates(context.Background(), nil))
	assert.NoError(t, repo.SaveRates(context.Background(), []domain.ExchangeRateRecord{}))
}
