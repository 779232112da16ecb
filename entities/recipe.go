package entities

type Recipe struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	OriginID uint   `gorm:"not null;index" json:"origin_id"`

	Origin            *Origin            `gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE" json:"-"`
	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"type:varchar(100);not null" json:"name"`
	Unit            string `gorm:"type:varchar(50)" json:"unit"`
	CaloriesPerUnit int    `json:"calories_per_unit"`

	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

// RecipeIngredient carries the per-recipe quantity and unit, which may differ
// from the ingredient's base unit.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index" json:"ingredient_id"`
	Quantity     float64 `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Unit         string  `gorm:"type:varchar(50)" json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}
