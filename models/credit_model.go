package models

import "gorm.io/gorm"

const (
	CreditTypeEarned     = "earned"
	CreditTypeBonus      = "bonus"
	CreditTypeAdjustment = "adjustment"
	CreditTypeRedeemed   = "redeemed"
)

// Credit is one row of a technician's commission ledger. Balance is the
// running balance after this entry was applied.
type Credit struct {
	gorm.Model
	TechnicianID uint    `json:"technician_id"`
	OrderID      *uint   `json:"order_id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Balance      float64 `json:"balance"`
	Status       string  `json:"status" gorm:"default:active"`
	Notes        string  `json:"notes"`
	CreatedBy    int     `json:"-"`
}
