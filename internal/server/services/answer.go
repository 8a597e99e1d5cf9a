package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/goboard/internal/server/models"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/repomanager"
)

// AnswerService implements posting answers to questions.
type AnswerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAnswerService(db *sql.DB, m repomanager.RepositoryManager) *AnswerService {
	return &AnswerService{db: db, repomanager: m}
}

// Create persists a new answer. The question must exist;
// common.ErrorNotFound propagates from the lookup when it does not. The
// foreign key on answers.question_id decides races with question deletion.
func (s *AnswerService) Create(ctx context.Context, authorID int64, questionID int64, content string) (*models.Answer, error) {
	if _, err := s.repomanager.Questions(s.db).GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: questionID,
		Content:    content,
		AuthorID:   authorID,
	}

	created, err := s.repomanager.Answers(s.db).Create(ctx, answer)
	if err != nil {
		return nil, fmt.Errorf("error creating answer: %w", err)
	}

	return created, nil
}
