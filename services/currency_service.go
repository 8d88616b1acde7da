package services

import (
	"fmt"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

// CurrencyService normalizes payment amounts into the contract currency.
//
// Rates are quoted as local units per one utils.BaseCurrency unit (the
// deployment-wide convention): converting local -> base divides by the rate,
// base -> local multiplies. Pairs that do not involve the base currency are
// not supported.
type CurrencyService struct{}

// NewCurrencyService creates a new currency service
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// Convert converts an amount from one currency to another. When the
// currencies match it is the identity and no rate is required. Otherwise the
// rate must be present and positive; the result keeps both the original and
// the converted figures.
func (s *CurrencyService) Convert(amount float64, from, to string, rate *float64) (*models.Conversion, error) {
	if from == to {
		return &models.Conversion{
			OriginalAmount:    amount,
			OriginalCurrency:  from,
			ConvertedAmount:   amount,
			ConvertedCurrency: to,
		}, nil
	}

	if rate == nil {
		return nil, utils.NewMissingExchangeRateError(from, to)
	}
	if *rate <= 0 {
		return nil, utils.NewValidationError(
			fmt.Sprintf("exchange rate must be positive, got %.6f", *rate))
	}

	var converted float64
	switch {
	case to == utils.BaseCurrency:
		converted = utils.Round(amount / *rate)
	case from == utils.BaseCurrency:
		converted = utils.Round(amount * *rate)
	default:
		return nil, utils.NewValidationError(
			fmt.Sprintf("unsupported currency pair %s/%s: one side must be %s", from, to, utils.BaseCurrency))
	}

	return &models.Conversion{
		OriginalAmount:    amount,
		OriginalCurrency:  from,
		ConvertedAmount:   converted,
		ConvertedCurrency: to,
		Rate:              rate,
	}, nil
}
