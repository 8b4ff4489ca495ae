package models

import "gorm.io/gorm"

type Setting struct {
	gorm.Model
	Key       string `json:"key" gorm:"unique;not null"`
	Value     string `json:"value"`
	UpdatedBy int    `json:"-"`
}
