package repository

import (
	"database/sql"

	"github.com/rentafacil/rentroll-backend/models"
)

// PaymentRepository handles payment event data operations
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateEvent appends a payment event. Events are never updated or deleted.
func (r *PaymentRepository) CreateEvent(event *models.PaymentEvent) error {
	query := `
		INSERT INTO payment_events
		(id, tenant_id, scheduled_item_id, contract_id, paid_date, amount, currency, method,
		 reference, notes, exchange_rate, converted_amount, resulting_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(query, event.ID, event.TenantID, event.ScheduledItemID, event.ContractID,
		event.PaidDate, event.Amount, event.Currency, event.Method, event.Reference, event.Notes,
		event.ExchangeRate, event.ConvertedAmount, event.ResultingStatus, event.CreatedAt)
	return err
}

const paymentEventColumns = `id, tenant_id, scheduled_item_id, contract_id, paid_date, amount,
	currency, method, reference, notes, exchange_rate, converted_amount, resulting_status, created_at`

func scanPaymentEvent(scanner interface{ Scan(...interface{}) error }) (models.PaymentEvent, error) {
	var event models.PaymentEvent
	var rate, converted sql.NullFloat64
	err := scanner.Scan(&event.ID, &event.TenantID, &event.ScheduledItemID, &event.ContractID,
		&event.PaidDate, &event.Amount, &event.Currency, &event.Method, &event.Reference,
		&event.Notes, &rate, &converted, &event.ResultingStatus, &event.CreatedAt)
	if err != nil {
		return event, err
	}
	if rate.Valid {
		event.ExchangeRate = &rate.Float64
	}
	if converted.Valid {
		event.ConvertedAmount = &converted.Float64
	}
	return event, nil
}

// GetEventsByItem retrieves all payment events for a scheduled item,
// ordered by paid date.
func (r *PaymentRepository) GetEventsByItem(tenantID, itemID string) ([]models.PaymentEvent, error) {
	query := `SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE tenant_id = $1 AND scheduled_item_id = $2
		ORDER BY paid_date, created_at`
	return r.queryEvents(query, tenantID, itemID)
}

// GetEventsByContract retrieves all payment events for a contract,
// ordered by paid date.
func (r *PaymentRepository) GetEventsByContract(tenantID, contractID string) ([]models.PaymentEvent, error) {
	query := `SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE tenant_id = $1 AND contract_id = $2
		ORDER BY paid_date, created_at`
	return r.queryEvents(query, tenantID, contractID)
}

// GetEventByID retrieves a payment event scoped to a tenant
func (r *PaymentRepository) GetEventByID(tenantID, eventID string) (*models.PaymentEvent, error) {
	query := `SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE tenant_id = $1 AND id = $2`
	event, err := scanPaymentEvent(r.db.QueryRow(query, tenantID, eventID))
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *PaymentRepository) queryEvents(query string, args ...interface{}) ([]models.PaymentEvent, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.PaymentEvent
	for rows.Next() {
		event, err := scanPaymentEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
