package models

import "gorm.io/gorm"

type SupplyHouse struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique" validate:"required,min=2"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
}
