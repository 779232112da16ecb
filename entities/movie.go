package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Movie struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ReleaseDate datatypes.Date `gorm:"not null" json:"release_date"`
	PosterURL   string         `json:"poster_url"`
	Director    string         `json:"director"`
	OriginID    uint           `gorm:"not null;index" json:"origin_id"`

	Origin      *Origin      `gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE" json:"-"`
	MovieGenres []MovieGenre `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews     []Review     `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MovieID    uint      `gorm:"not null;index" json:"movie_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText string    `gorm:"type:text" json:"review_text"`
	ReviewDate time.Time `gorm:"not null" json:"review_date"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
