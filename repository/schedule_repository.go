package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentafacil/rentroll-backend/models"
)

// ErrStaleBalance is returned by ApplyPayment when the conditional update
// matched no row: either the item does not exist or its balance changed
// between the caller's read and this write.
var ErrStaleBalance = errors.New("scheduled item balance changed since read")

// ScheduleRepository handles scheduled item data operations
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduledItemColumns = `id, tenant_id, contract_id, item_tag, period, owner_id, owner_name,
	owner_percentage, original_amount, expected_amount, accumulated_paid_amount, status, created_at`

func scanScheduledItem(scanner interface{ Scan(...interface{}) error }) (models.ScheduledItem, error) {
	var item models.ScheduledItem
	err := scanner.Scan(&item.ID, &item.TenantID, &item.ContractID, &item.ItemTag, &item.Period,
		&item.OwnerID, &item.OwnerName, &item.OwnerPercentage, &item.OriginalAmount,
		&item.ExpectedAmount, &item.AccumulatedPaidAmount, &item.Status, &item.CreatedAt)
	return item, err
}

// InsertItems bulk-inserts scheduled items inside a single transaction
func (r *ScheduleRepository) InsertItems(items []models.ScheduledItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := insertItemsTx(tx, items); err != nil {
		return err
	}

	return tx.Commit()
}

func insertItemsTx(tx *sql.Tx, items []models.ScheduledItem) error {
	query := `
		INSERT INTO scheduled_items
		(id, tenant_id, contract_id, item_tag, period, owner_id, owner_name, owner_percentage,
		 original_amount, expected_amount, accumulated_paid_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	for _, item := range items {
		_, err := tx.Exec(query, item.ID, item.TenantID, item.ContractID, item.ItemTag,
			item.Period, item.OwnerID, item.OwnerName, item.OwnerPercentage,
			item.OriginalAmount, item.ExpectedAmount, item.AccumulatedPaidAmount,
			item.Status, item.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert scheduled item: %v", err)
		}
	}
	return nil
}

// GetItemByID retrieves a scheduled item scoped to a tenant
func (r *ScheduleRepository) GetItemByID(tenantID, itemID string) (*models.ScheduledItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM scheduled_items WHERE tenant_id = $1 AND id = $2`, scheduledItemColumns)
	item, err := scanScheduledItem(r.db.QueryRow(query, tenantID, itemID))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemsByContract retrieves all scheduled items for a contract
func (r *ScheduleRepository) GetItemsByContract(tenantID, contractID string) ([]models.ScheduledItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM scheduled_items
		WHERE tenant_id = $1 AND contract_id = $2
		ORDER BY period, item_tag, owner_id`, scheduledItemColumns)
	rows, err := r.db.Query(query, tenantID, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ScheduledItem
	for rows.Next() {
		item, err := scanScheduledItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ApplyPayment performs the atomic conditional balance update. The WHERE
// clause requires the expected amount the caller read, so two concurrent
// writers cannot both consume the same balance: the second one matches no
// row and gets ErrStaleBalance.
func (r *ScheduleRepository) ApplyPayment(tenantID, itemID string, readExpected, newAccumulated, newExpected float64, newStatus string) error {
	query := `
		UPDATE scheduled_items
		SET accumulated_paid_amount = $1, expected_amount = $2, status = $3
		WHERE tenant_id = $4 AND id = $5 AND expected_amount = $6
	`
	result, err := r.db.Exec(query, newAccumulated, newExpected, newStatus, tenantID, itemID, readExpected)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStaleBalance
	}
	return nil
}

// RegenerateSchedule atomically replaces a contract's scheduled items. It
// locks and loads the existing rows, asks build for the replacement set plus
// the old-to-new id mapping for rows with payment history, re-links payment
// events to their new rows, then deletes and recreates the schedule. Any
// failure rolls the whole operation back.
func (r *ScheduleRepository) RegenerateSchedule(tenantID, contractID string,
	build func(existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string, error)) error {

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	// Lock the contract's rows so concurrent payments wait out the rebuild
	query := fmt.Sprintf(`SELECT %s FROM scheduled_items
		WHERE tenant_id = $1 AND contract_id = $2
		ORDER BY period, item_tag, owner_id
		FOR UPDATE`, scheduledItemColumns)
	rows, err := tx.Query(query, tenantID, contractID)
	if err != nil {
		return fmt.Errorf("failed to load existing schedule: %v", err)
	}

	var existing []models.ScheduledItem
	for rows.Next() {
		item, err := scanScheduledItem(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan existing schedule: %v", err)
		}
		existing = append(existing, item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed to read existing schedule: %v", err)
	}
	rows.Close()

	newItems, relink, err := build(existing)
	if err != nil {
		return err
	}

	// Phase 1: re-link payment events so history survives the rebuild
	for oldID, newID := range relink {
		_, err := tx.Exec(
			`UPDATE payment_events SET scheduled_item_id = $1 WHERE tenant_id = $2 AND scheduled_item_id = $3`,
			newID, tenantID, oldID,
		)
		if err != nil {
			return fmt.Errorf("failed to re-link payment events: %v", err)
		}
	}

	// Phase 2: delete and recreate the schedule rows
	_, err = tx.Exec(`DELETE FROM scheduled_items WHERE tenant_id = $1 AND contract_id = $2`, tenantID, contractID)
	if err != nil {
		return fmt.Errorf("failed to delete prior schedule: %v", err)
	}

	if err := insertItemsTx(tx, newItems); err != nil {
		return err
	}

	return tx.Commit()
}
