package repositories

import (
	"errors"
	"truxtok/models"

	"gorm.io/gorm"
)

type CreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db}
}

// CurrentBalance returns the running balance of the technician's newest
// ledger row, zero when the ledger is empty.
func (r *CreditRepository) CurrentBalance(technicianID uint) (float64, error) {
	var last models.Credit
	err := r.db.Where("technician_id = ?", technicianID).
		Order("id desc").First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return last.Balance, nil
}

// Append writes one ledger row with the balance snapshot recomputed from
// the previous row. Call inside the surrounding transaction.
func (r *CreditRepository) Append(credit *models.Credit) error {
	balance, err := r.CurrentBalance(credit.TechnicianID)
	if err != nil {
		return err
	}

	credit.Balance = balance + credit.Amount
	return r.db.Create(credit).Error
}
