package models

import "gorm.io/gorm"

type Truck struct {
	gorm.Model
	TruckNumber string     `json:"truck_number" gorm:"unique"`
	Description string     `json:"description"`
	AssignedTo  *uint      `json:"assigned_to"`
	Status      string     `json:"status" gorm:"default:active"`
	Bins        []TruckBin `json:"bins,omitempty" gorm:"foreignKey:TruckID"`
	CreatedBy   int        `json:"-"`
	UpdatedBy   int        `json:"-"`
}

type TruckBin struct {
	gorm.Model
	TruckID  uint   `json:"truck_id" gorm:"uniqueIndex:idx_truck_bin"`
	BinCode  string `json:"bin_code" gorm:"uniqueIndex:idx_truck_bin"`
	Capacity int    `json:"capacity" gorm:"default:0"`
}
