package models

import "gorm.io/gorm"

type Activity struct {
	gorm.Model
	UserID    *uint  `json:"user_id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}
