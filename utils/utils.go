package utils

import (
	"truxtok/models"

	"gorm.io/gorm"
)

// LogActivity appends one audit row. Failures are ignored; the audit log
// never blocks the request that produced it.
func LogActivity(db *gorm.DB, userID *uint, action, detail, ip, ua string) {
	db.Create(&models.Activity{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		IPAddress: ip,
		UserAgent: ua,
	})
}
