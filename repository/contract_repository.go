package repository

import (
	"database/sql"

	"github.com/rentafacil/rentroll-backend/models"
)

// ContractRepository handles contract data operations
type ContractRepository struct {
	db *sql.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// CreateContract inserts a new contract record
func (r *ContractRepository) CreateContract(contract *models.Contract) error {
	query := `
		INSERT INTO contracts
		(id, tenant_id, property_id, currency, monthly_rent, item_a_amount, item_b_amount,
		 item_a_method, item_b_method, method_detail, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(query, contract.ID, contract.TenantID, contract.PropertyID,
		contract.Currency, contract.MonthlyRent, contract.ItemAAmount, contract.ItemBAmount,
		contract.ItemAMethod, contract.ItemBMethod, contract.MethodDetail, contract.Active,
		contract.CreatedAt, contract.UpdatedAt)
	return err
}

// GetContractByID retrieves a contract scoped to a tenant
func (r *ContractRepository) GetContractByID(tenantID, contractID string) (*models.Contract, error) {
	query := `
		SELECT id, tenant_id, property_id, currency, monthly_rent, item_a_amount, item_b_amount,
		       item_a_method, item_b_method, method_detail, active, created_at, updated_at
		FROM contracts
		WHERE tenant_id = $1 AND id = $2
	`
	var contract models.Contract
	err := r.db.QueryRow(query, tenantID, contractID).Scan(
		&contract.ID, &contract.TenantID, &contract.PropertyID, &contract.Currency,
		&contract.MonthlyRent, &contract.ItemAAmount, &contract.ItemBAmount,
		&contract.ItemAMethod, &contract.ItemBMethod, &contract.MethodDetail,
		&contract.Active, &contract.CreatedAt, &contract.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateContractAmounts persists a recomputed rent/item split
func (r *ContractRepository) UpdateContractAmounts(contract *models.Contract) error {
	query := `
		UPDATE contracts
		SET monthly_rent = $1, item_a_amount = $2, item_b_amount = $3, updated_at = $4
		WHERE tenant_id = $5 AND id = $6
	`
	_, err := r.db.Exec(query, contract.MonthlyRent, contract.ItemAAmount,
		contract.ItemBAmount, contract.UpdatedAt, contract.TenantID, contract.ID)
	return err
}

// SetContractActive marks a contract as activated
func (r *ContractRepository) SetContractActive(tenantID, contractID string, active bool) error {
	query := `UPDATE contracts SET active = $1 WHERE tenant_id = $2 AND id = $3`
	_, err := r.db.Exec(query, active, tenantID, contractID)
	return err
}
