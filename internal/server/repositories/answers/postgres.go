package answers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goboard/internal/dbx"
	"github.com/dmitrijs2005/goboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, answer *models.Answer) (*models.Answer, error) {

	query :=
		`INSERT INTO answers (question_id, content, author_id)
         VALUES ($1, $2, $3)
		 RETURNING id, create_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		answer.QuestionID, answer.Content, answer.AuthorID).Scan(&answer.ID, &answer.CreateDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return answer, nil
}

// ListByQuestion returns the answers of a question, oldest first.
func (r *PostgresRepository) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	query :=
		`SELECT id, question_id, content, author_id, create_date FROM answers
		 WHERE question_id = $1
		 ORDER BY create_date ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Answer
	for rows.Next() {
		a := &models.Answer{}
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Content, &a.AuthorID, &a.CreateDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
