package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_Convert_SameCurrencyIdentity(t *testing.T) {
	service := NewCurrencyService()

	conversion, err := service.Convert(500, "ARS", "ARS", nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, conversion.ConvertedAmount)
	assert.Equal(t, "ARS", conversion.ConvertedCurrency)
	assert.Nil(t, conversion.Rate)
}

func TestCurrencyService_Convert_BaseToLocalMultiplies(t *testing.T) {
	service := NewCurrencyService()

	// 100 USD at 1450 local-per-USD -> 145000 ARS
	rate := 1450.0
	conversion, err := service.Convert(100, "USD", "ARS", &rate)
	require.NoError(t, err)
	assert.Equal(t, 145000.0, conversion.ConvertedAmount)

	// Both sides of the conversion are retained
	assert.Equal(t, 100.0, conversion.OriginalAmount)
	assert.Equal(t, "USD", conversion.OriginalCurrency)
	assert.Equal(t, "ARS", conversion.ConvertedCurrency)
	require.NotNil(t, conversion.Rate)
	assert.Equal(t, 1450.0, *conversion.Rate)
}

func TestCurrencyService_Convert_LocalToBaseDivides(t *testing.T) {
	service := NewCurrencyService()

	rate := 1450.0
	conversion, err := service.Convert(145000, "ARS", "USD", &rate)
	require.NoError(t, err)
	assert.Equal(t, 100.0, conversion.ConvertedAmount)
}

func TestCurrencyService_Convert_MissingRateRejected(t *testing.T) {
	service := NewCurrencyService()

	_, err := service.Convert(100, "USD", "ARS", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing exchange rate")
	assert.Contains(t, err.Error(), "USD")
	assert.Contains(t, err.Error(), "ARS")
}

func TestCurrencyService_Convert_NonPositiveRateRejected(t *testing.T) {
	service := NewCurrencyService()

	rate := 0.0
	_, err := service.Convert(100, "USD", "ARS", &rate)
	assert.Error(t, err)

	rate = -2.5
	_, err = service.Convert(100, "USD", "ARS", &rate)
	assert.Error(t, err)
}

func TestCurrencyService_Convert_PairWithoutBaseRejected(t *testing.T) {
	service := NewCurrencyService()

	rate := 1.1
	_, err := service.Convert(100, "EUR", "ARS", &rate)
	assert.Error(t, err)
}
