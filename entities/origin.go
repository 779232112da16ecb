package entities

type Origin struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Country string `gorm:"type:varchar(100);not null" json:"country"`

	Movies  []Movie  `gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes []Recipe `gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
