package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/goboard/internal/server/models"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/repomanager"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// QuestionService implements listing, reading, and creating questions.
type QuestionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewQuestionService(db *sql.DB, m repomanager.RepositoryManager) *QuestionService {
	return &QuestionService{db: db, repomanager: m}
}

// List returns one page of questions, newest first, together with the total
// count. Page is zero-based; out-of-range inputs are clamped.
func (s *QuestionService) List(ctx context.Context, page, size int) (int64, []*models.Question, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	repo := s.repomanager.Questions(s.db)

	total, err := repo.Count(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("error counting questions: %w", err)
	}

	items, err := repo.List(ctx, size, page*size)
	if err != nil {
		return 0, nil, fmt.Errorf("error listing questions: %w", err)
	}

	return total, items, nil
}

// Get returns a question and its answers. Missing questions yield
// common.ErrorNotFound from the repository.
func (s *QuestionService) Get(ctx context.Context, id int64) (*models.Question, []*models.Answer, error) {
	question, err := s.repomanager.Questions(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	answers, err := s.repomanager.Answers(s.db).ListByQuestion(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing answers: %w", err)
	}

	return question, answers, nil
}

// Create persists a new question authored by the given user.
func (s *QuestionService) Create(ctx context.Context, authorID int64, subject, content string) (*models.Question, error) {
	question := &models.Question{
		Subject:  subject,
		Content:  content,
		AuthorID: authorID,
	}

	created, err := s.repomanager.Questions(s.db).Create(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	return created, nil
}
