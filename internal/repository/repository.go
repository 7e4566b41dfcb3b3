package repository

import (
	"context"
	"database/sql"

	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Conversions interface {
	Save(ctx context.Context, c models.Conversion) (models.Conversion, error)
	ListByUser(ctx context.Context, userID, limit, offset int) ([]models.Conversion, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

type Repository struct {
	Users       Users
	Conversions Conversions
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(database),
		Conversions: NewConversionRepository(database),
	}
}

// InitDB opens the SQLite database at path and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
