package entities

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	MovieGenres []MovieGenre `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

// MovieGenre is keyed by the (movie, genre) pair; it has no surrogate id.
type MovieGenre struct {
	MovieID uint `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	GenreID uint `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	Genre *Genre `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"-"`
}
