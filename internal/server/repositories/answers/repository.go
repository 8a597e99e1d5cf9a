package answers

import (
	"context"

	"github.com/dmitrijs2005/goboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, answer *models.Answer) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error)
}
