package questions

import (
	"context"

	"github.com/dmitrijs2005/goboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, question *models.Question) (*models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context, limit int, offset int) ([]*models.Question, error)
	Count(ctx context.Context) (int64, error)
}
