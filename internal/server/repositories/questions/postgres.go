package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/dmitrijs2005/goboard/internal/dbx"
	"github.com/dmitrijs2005/goboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, question *models.Question) (*models.Question, error) {

	query :=
		`INSERT INTO questions (subject, content, author_id)
         VALUES ($1, $2, $3)
		 RETURNING id, create_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		question.Subject, question.Content, question.AuthorID).Scan(&question.ID, &question.CreateDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return question, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query :=
		`SELECT id, subject, content, author_id, create_date FROM questions
		 WHERE id = $1
		 `

	q := &models.Question{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&q.ID, &q.Subject, &q.Content, &q.AuthorID, &q.CreateDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return q, nil
}

// List returns questions ordered newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int, offset int) ([]*models.Question, error) {
	query :=
		`SELECT id, subject, content, author_id, create_date FROM questions
		 ORDER BY create_date DESC
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Question
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(&q.ID, &q.Subject, &q.Content, &q.AuthorID, &q.CreateDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
