// Package testutil holds fixtures shared by package tests.
package testutil

import (
	migration "DishAndMovie/cmd/database/migrate"
	"DishAndMovie/entities"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema. The pool
// is pinned to one connection so every query sees the same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateOrigin(t *testing.T, db *gorm.DB, country string) entities.Origin {
	t.Helper()
	o := entities.Origin{Country: country}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func CreateGenre(t *testing.T, db *gorm.DB, name string) entities.Genre {
	t.Helper()
	g := entities.Genre{Name: name}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string, calories int) entities.Ingredient {
	t.Helper()
	i := entities.Ingredient{Name: name, Unit: unit, CaloriesPerUnit: calories}
	require.NoError(t, db.Create(&i).Error)
	return i
}

func CreateMovie(t *testing.T, db *gorm.DB, title string, originID uint) entities.Movie {
	t.Helper()
	m := entities.Movie{
		Title:       title,
		ReleaseDate: datatypes.Date(time.Date(2001, time.July, 20, 0, 0, 0, 0, time.UTC)),
		OriginID:    originID,
	}
	require.NoError(t, db.Omit("Origin").Create(&m).Error)
	return m
}

func CreateRecipe(t *testing.T, db *gorm.DB, name string, originID uint) entities.Recipe {
	t.Helper()
	r := entities.Recipe{Name: name, OriginID: originID}
	require.NoError(t, db.Omit("Origin").Create(&r).Error)
	return r
}

func CreateUser(t *testing.T, db *gorm.DB, email, password string) entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := entities.User{Email: email, UserName: email, PasswordHash: string(hash), Role: "user"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func CreateReview(t *testing.T, db *gorm.DB, movieID, userID uint, rating int) entities.Review {
	t.Helper()
	r := entities.Review{MovieID: movieID, UserID: userID, Rating: rating, ReviewText: "ok", ReviewDate: time.Now()}
	require.NoError(t, db.Omit("Movie", "User").Create(&r).Error)
	return r
}
