package repository

import (
	"database/sql"

	"github.com/rentafacil/rentroll-backend/models"
)

// OwnershipRepository handles ownership share data operations
type OwnershipRepository struct {
	db *sql.DB
}

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *sql.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// GetSharesByProperty retrieves all ownership shares for a property,
// including shares whose activity window has ended. Callers filter per
// period date with ActiveOn.
func (r *OwnershipRepository) GetSharesByProperty(tenantID, propertyID string) ([]models.OwnershipShare, error) {
	query := `
		SELECT id, tenant_id, property_id, owner_id, owner_name, percentage, start_date, end_date
		FROM ownership_shares
		WHERE tenant_id = $1 AND property_id = $2
		ORDER BY start_date, owner_id
	`
	rows, err := r.db.Query(query, tenantID, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.OwnershipShare
	for rows.Next() {
		var share models.OwnershipShare
		var endDate sql.NullTime
		err := rows.Scan(&share.ID, &share.TenantID, &share.PropertyID, &share.OwnerID,
			&share.OwnerName, &share.Percentage, &share.StartDate, &endDate)
		if err != nil {
			return nil, err
		}
		if endDate.Valid {
			share.EndDate = &endDate.Time
		}
		shares = append(shares, share)
	}

	return shares, rows.Err()
}

// CreateShare inserts a new ownership share record
func (r *OwnershipRepository) CreateShare(share *models.OwnershipShare) error {
	query := `
		INSERT INTO ownership_shares
		(tenant_id, property_id, owner_id, owner_name, percentage, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var endDate interface{}
	if share.EndDate != nil {
		endDate = *share.EndDate
	}
	return r.db.QueryRow(query, share.TenantID, share.PropertyID, share.OwnerID,
		share.OwnerName, share.Percentage, share.StartDate, endDate).Scan(&share.ID)
}
