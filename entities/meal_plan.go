package entities

import "gorm.io/datatypes"

type MealPlan struct {
	ID   uint           `gorm:"primaryKey" json:"id"`
	Name string         `gorm:"type:varchar(255);not null" json:"name"`
	Date datatypes.Date `gorm:"not null" json:"date"`
	Timestamp
}
