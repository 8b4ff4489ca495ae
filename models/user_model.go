package models

import "gorm.io/gorm"

const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	Role      string `json:"role" gorm:"default:technician"`
	Status    string `json:"status" gorm:"default:active"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
}
