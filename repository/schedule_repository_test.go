package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentafacil/rentroll-backend/models"
)

func scheduledItemRows(items ...models.ScheduledItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "contract_id", "item_tag", "period", "owner_id", "owner_name",
		"owner_percentage", "original_amount", "expected_amount", "accumulated_paid_amount",
		"status", "created_at",
	})
	for _, item := range items {
		rows.AddRow(item.ID, item.TenantID, item.ContractID, item.ItemTag, item.Period,
			item.OwnerID, item.OwnerName, item.OwnerPercentage, item.OriginalAmount,
			item.ExpectedAmount, item.AccumulatedPaidAmount, item.Status, item.CreatedAt)
	}
	return rows
}

func testItem(id string) models.ScheduledItem {
	return models.ScheduledItem{
		ID:              id,
		TenantID:        "tenant-1",
		ContractID:      "contract-1",
		ItemTag:         "A",
		Period:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		OwnerID:         "owner-1",
		OwnerName:       "ana",
		OwnerPercentage: 60,
		OriginalAmount:  420,
		ExpectedAmount:  420,
		Status:          "pending",
		CreatedAt:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestScheduleRepository_ApplyPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)

	mock.ExpectExec("UPDATE scheduled_items").
		WithArgs(200.0, 220.0, "partial", "tenant-1", "item-1", 420.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.ApplyPayment("tenant-1", "item-1", 420, 200, 220, "partial")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_ApplyPayment_StaleBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)

	// The conditional update matches no row when the balance changed
	// between the caller's read and this write.
	mock.ExpectExec("UPDATE scheduled_items").
		WithArgs(420.0, 0.0, "paid", "tenant-1", "item-1", 420.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ApplyPayment("tenant-1", "item-1", 420, 420, 0, "paid")
	assert.ErrorIs(t, err, ErrStaleBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_RegenerateSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)

	old := testItem("old-1")
	old.AccumulatedPaidAmount = 200
	old.ExpectedAmount = 220
	old.Status = "partial"

	replacement := testItem("new-1")
	replacement.AccumulatedPaidAmount = 200
	replacement.ExpectedAmount = 220
	replacement.Status = "partial"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM scheduled_items").
		WithArgs("tenant-1", "contract-1").
		WillReturnRows(scheduledItemRows(old))
	mock.ExpectExec("UPDATE payment_events").
		WithArgs("new-1", "tenant-1", "old-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM scheduled_items").
		WithArgs("tenant-1", "contract-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO scheduled_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.RegenerateSchedule("tenant-1", "contract-1",
		func(existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string, error) {
			require.Len(t, existing, 1)
			assert.Equal(t, 200.0, existing[0].AccumulatedPaidAmount)
			return []models.ScheduledItem{replacement}, map[string]string{"old-1": "new-1"}, nil
		})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_RegenerateSchedule_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM scheduled_items").
		WithArgs("tenant-1", "contract-1").
		WillReturnRows(scheduledItemRows(testItem("old-1")))
	mock.ExpectRollback()

	buildErr := errors.New("schedule could not be rebuilt")
	err = repo.RegenerateSchedule("tenant-1", "contract-1",
		func(existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string, error) {
			return nil, nil, buildErr
		})
	assert.ErrorIs(t, err, buildErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_RegenerateSchedule_RollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM scheduled_items").
		WithArgs("tenant-1", "contract-1").
		WillReturnRows(scheduledItemRows())
	mock.ExpectExec("DELETE FROM scheduled_items").
		WithArgs("tenant-1", "contract-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO scheduled_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err = repo.RegenerateSchedule("tenant-1", "contract-1",
		func(existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string, error) {
			return []models.ScheduledItem{testItem("new-1")}, nil, nil
		})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
