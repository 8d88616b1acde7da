package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

func testContract() *models.Contract {
	return &models.Contract{
		ID:          "contract-1",
		TenantID:    "tenant-1",
		PropertyID:  "property-1",
		Currency:    "ARS",
		MonthlyRent: 1000,
		ItemAAmount: 700,
		ItemBAmount: 300,
	}
}

func testShares() []models.OwnershipShare {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.OwnershipShare{
		{ID: 1, TenantID: "tenant-1", PropertyID: "property-1", OwnerID: "owner-1", OwnerName: "ana", Percentage: 60, StartDate: start},
		{ID: 2, TenantID: "tenant-1", PropertyID: "property-1", OwnerID: "owner-2", OwnerName: "bruno", Percentage: 40, StartDate: start},
	}
}

func TestScheduleService_BuildSchedule_TwoOwnersSplit(t *testing.T) {
	service := &ScheduleService{}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	result, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)
	require.Len(t, result.Items, 4)
	assert.Empty(t, result.Warnings)

	// contract 1000/700 with 60%/40% owners:
	// Item A: 700*0.60=420, 700*0.40=280; Item B: 300*0.60=180, 300*0.40=120
	amounts := make(map[string]float64)
	for _, item := range result.Items {
		amounts[item.ItemTag+"/"+item.OwnerID] = item.OriginalAmount
		assert.Equal(t, item.OriginalAmount, item.ExpectedAmount)
		assert.Equal(t, 0.0, item.AccumulatedPaidAmount)
		assert.Equal(t, utils.StatusPending, item.Status)
	}

	assert.Equal(t, 420.0, amounts["A/owner-1"])
	assert.Equal(t, 280.0, amounts["A/owner-2"])
	assert.Equal(t, 180.0, amounts["B/owner-1"])
	assert.Equal(t, 120.0, amounts["B/owner-2"])
}

func TestScheduleService_BuildSchedule_ZeroItemProducesNoLines(t *testing.T) {
	service := &ScheduleService{}
	contract := testContract()
	contract.ItemAAmount = 1000
	contract.ItemBAmount = 0

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	result, err := service.BuildSchedule(contract, testShares(), periods, now)
	require.NoError(t, err)

	// Only item A lines: a zero-amount item produces no ledger rows
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, utils.ItemTagA, item.ItemTag)
	}
}

func TestScheduleService_BuildSchedule_PastPeriodIsOverdue(t *testing.T) {
	service := &ScheduleService{}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	result, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)
	require.Len(t, result.Items, 8)

	for _, item := range result.Items {
		if item.Period.Month() == time.April {
			assert.Equal(t, utils.StatusOverdue, item.Status)
		} else {
			assert.Equal(t, utils.StatusPending, item.Status)
		}
	}
}

func TestScheduleService_BuildSchedule_ShareWindowPerPeriod(t *testing.T) {
	service := &ScheduleService{}
	shares := testShares()

	// Second owner's share ends mid-schedule
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	shares[1].EndDate = &end

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	result, err := service.BuildSchedule(testContract(), shares, periods, now)
	require.NoError(t, err)

	// June: both owners (4 lines). July: only owner-1 (2 lines).
	require.Len(t, result.Items, 6)
	for _, item := range result.Items {
		if item.Period.Month() == time.July {
			assert.Equal(t, "owner-1", item.OwnerID)
		}
	}

	// July's active shares no longer sum to 100%
	assert.NotEmpty(t, result.Warnings)
}

func TestScheduleService_BuildSchedule_UnresolvableOwnerSkippedWithWarning(t *testing.T) {
	service := &ScheduleService{}
	shares := testShares()
	shares[1].OwnerID = ""

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	result, err := service.BuildSchedule(testContract(), shares, periods, now)
	require.NoError(t, err)

	// Partial schedule instead of a fatal error
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, "owner-1", item.OwnerID)
	}
	assert.NotEmpty(t, result.Warnings)
}

func TestScheduleService_BuildSchedule_InvalidPercentageRejected(t *testing.T) {
	service := &ScheduleService{}
	shares := testShares()
	shares[0].Percentage = 150

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	_, err := service.BuildSchedule(testContract(), shares, periods, now)
	assert.Error(t, err)
}

func TestMergeScheduleHistory_IdempotentWithoutPayments(t *testing.T) {
	service := &ScheduleService{}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	first, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)
	second, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)

	merged, relink := MergeScheduleHistory(second.Items, first.Items)

	// Same count, same amounts, nothing accumulated across regenerations
	require.Len(t, merged, len(first.Items))
	for i, item := range merged {
		assert.Equal(t, first.Items[i].OriginalAmount, item.OriginalAmount)
		assert.Equal(t, first.Items[i].ExpectedAmount, item.ExpectedAmount)
		assert.Equal(t, 0.0, item.AccumulatedPaidAmount)
	}

	// Every line matched an existing one, so every old row gets re-linked
	assert.Len(t, relink, len(first.Items))
}

func TestMergeScheduleHistory_PreservesPaymentHistory(t *testing.T) {
	service := &ScheduleService{}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	existing, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)

	// Partially pay the 420 line before regenerating
	var paidOldID string
	for i := range existing.Items {
		if existing.Items[i].OriginalAmount == 420.0 {
			existing.Items[i].AccumulatedPaidAmount = 200
			existing.Items[i].ExpectedAmount = 220
			existing.Items[i].Status = utils.StatusPartial
			paidOldID = existing.Items[i].ID
		}
	}

	fresh, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)

	merged, relink := MergeScheduleHistory(fresh.Items, existing.Items)

	found := false
	for _, item := range merged {
		if item.OriginalAmount == 420.0 {
			found = true
			assert.Equal(t, 200.0, item.AccumulatedPaidAmount)
			assert.Equal(t, 220.0, item.ExpectedAmount)
			assert.Equal(t, utils.StatusPartial, item.Status)
			assert.Equal(t, item.ID, relink[paidOldID])
		} else {
			assert.Equal(t, 0.0, item.AccumulatedPaidAmount)
		}
	}
	assert.True(t, found, "the partially paid line should survive regeneration")
}

func TestMergeScheduleHistory_FullyPaidLineStaysPaid(t *testing.T) {
	service := &ScheduleService{}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periods := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	existing, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)
	for i := range existing.Items {
		existing.Items[i].AccumulatedPaidAmount = existing.Items[i].OriginalAmount
		existing.Items[i].ExpectedAmount = 0
		existing.Items[i].Status = utils.StatusPaid
	}

	fresh, err := service.BuildSchedule(testContract(), testShares(), periods, now)
	require.NoError(t, err)

	merged, _ := MergeScheduleHistory(fresh.Items, existing.Items)
	for _, item := range merged {
		assert.Equal(t, utils.StatusPaid, item.Status)
		assert.Equal(t, 0.0, item.ExpectedAmount)
		assert.Equal(t, item.OriginalAmount, item.AccumulatedPaidAmount)
	}
}

func TestParsePeriods(t *testing.T) {
	periods, err := ParsePeriods([]string{"2024-06-01", "2024-07-01"})
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, time.June, periods[0].Month())

	_, err = ParsePeriods([]string{"06/01/2024"})
	assert.Error(t, err)
}
