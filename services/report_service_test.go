package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

func reportItems() []models.ScheduledItem {
	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return []models.ScheduledItem{
		{ID: "i1", ItemTag: "A", Period: june, OwnerID: "owner-1", OwnerName: "ana",
			OriginalAmount: 420, AccumulatedPaidAmount: 200, ExpectedAmount: 220, Status: utils.StatusPartial},
		{ID: "i2", ItemTag: "B", Period: june, OwnerID: "owner-1", OwnerName: "ana",
			OriginalAmount: 180, AccumulatedPaidAmount: 180, ExpectedAmount: 0, Status: utils.StatusPaid},
		{ID: "i3", ItemTag: "A", Period: july, OwnerID: "owner-2", OwnerName: "bruno",
			OriginalAmount: 280, AccumulatedPaidAmount: 0, ExpectedAmount: 280, Status: utils.StatusPending},
	}
}

func TestBuildExportRows(t *testing.T) {
	rows := BuildExportRows(reportItems())
	require.Len(t, rows, 3)

	assert.Equal(t, models.ScheduleExportRow{
		Period:         "2024-06-01",
		Owner:          "Ana",
		Item:           "A",
		OriginalAmount: 420,
		PaidAmount:     200,
		PendingAmount:  220,
		Status:         utils.StatusPartial,
	}, rows[0])
}

func TestNetIncomeAccrual(t *testing.T) {
	rows := NetIncomeAccrual(reportItems())
	require.Len(t, rows, 2)

	// Sorted by period, then owner: ana's June totals first
	assert.Equal(t, "2024-06", rows[0].Period)
	assert.Equal(t, "Ana", rows[0].OwnerName)
	assert.Equal(t, 600.0, rows[0].ExpectedTotal)
	assert.Equal(t, 380.0, rows[0].PaidTotal)
	assert.Equal(t, 220.0, rows[0].PendingTotal)

	assert.Equal(t, "2024-07", rows[1].Period)
	assert.Equal(t, "Bruno", rows[1].OwnerName)
	assert.Equal(t, 280.0, rows[1].ExpectedTotal)
	assert.Equal(t, 0.0, rows[1].PaidTotal)
}

func TestNetIncomeCash(t *testing.T) {
	converted := 145000.0
	rate := 1450.0
	events := []models.PaymentEvent{
		// June service period paid in July: cash view groups by paid date
		{ID: "e1", ScheduledItemID: "i1", PaidDate: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), Amount: 200},
		{ID: "e2", ScheduledItemID: "i2", PaidDate: time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
			Amount: 100, Currency: "USD", ExchangeRate: &rate, ConvertedAmount: &converted},
		// Event pointing at an unknown item is ignored
		{ID: "e3", ScheduledItemID: "missing", PaidDate: time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC), Amount: 999},
	}

	rows := NetIncomeCash(reportItems(), events)
	require.Len(t, rows, 2)

	// June: the converted figure counts, not the tendered USD amount
	assert.Equal(t, "2024-06", rows[0].Period)
	assert.Equal(t, 145000.0, rows[0].PaidTotal)

	assert.Equal(t, "2024-07", rows[1].Period)
	assert.Equal(t, 200.0, rows[1].PaidTotal)
}
