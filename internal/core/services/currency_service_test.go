package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  *services.CurrencyService
}

func (s *CurrencyServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCurrencyRepository)
	s.service = services.NewCurrencyService(s.mockRepo, nil)
}

func (s *CurrencyServiceTestSuite) TestGetCurrencyByCode_UppercasesInput() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"}

	s.mockRepo.On("FindCurrencyByCode", ctx, "GBP").Return(expected, nil).Once()

	currency, err := s.service.GetCurrencyByCode(ctx, "gbp")
	s.Require().NoError(err)
	s.Equal(expected, currency)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmptySlice() {
	ctx := context.Background()
	s.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := s.service.ListCurrencies(ctx)
	s.Require().NoError(err)
	s.NotNil(currencies)
	s.Empty(currencies)
}

func (s *CurrencyServiceTestSuite) TestEnsureCurrencies_SeedsKnownAndUnknownCodes() {
	ctx := context.Background()

	s.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "GBP" && c.Symbol == "£" && c.Name == "British Pound"
	})).Return(nil).Once()

	// Codes without display metadata fall back to the code as the name.
	s.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "XYZ" && c.Name == "XYZ"
	})).Return(nil).Once()

	err := s.service.EnsureCurrencies(ctx, []string{" gbp ", "", "XYZ"})
	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestEnsureCurrencies_StopsOnFirstFailure() {
	ctx := context.Background()

	s.mockRepo.On("SaveCurrency", ctx, mock.Anything).Return(errors.New("connection refused")).Once()

	err := s.service.EnsureCurrencies(ctx, []string{"GBP", "INR"})
	s.Require().Error(err)
	s.Contains(err.Error(), "GBP")
	s.mockRepo.AssertNumberOfCalls(s.T(), "SaveCurrency", 1)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
