package users

import (
	"context"

	"github.com/dmitrijs2005/goboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username string, email string) (*models.User, error)
}
