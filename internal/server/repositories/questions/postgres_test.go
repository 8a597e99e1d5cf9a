package questions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/dmitrijs2005/goboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+questions\s*\(subject,\s*content,\s*author_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*create_date\s*$`

	rows := sqlmock.NewRows([]string{"id", "create_date"}).AddRow(int64(3), time.Now())
	mock.ExpectQuery(q).
		WithArgs("subj", "body", int64(1)).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Question{Subject: "subj", Content: "body", AuthorID: 1})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected question: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestList_OrderedAndPaged(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*subject,\s*content,\s*author_id,\s*create_date\s+FROM\s+questions\s+ORDER\s+BY\s+create_date\s+DESC\s+LIMIT\s+\$1\s+OFFSET\s+\$2\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "subject", "content", "author_id", "create_date"}).
		AddRow(int64(2), "newer", "b", int64(1), now).
		AddRow(int64(1), "older", "a", int64(1), now.Add(-time.Hour))
	mock.ExpectQuery(q).
		WithArgs(10, 20).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Subject != "newer" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "subject", "content", "author_id", "create_date"})
	mock.ExpectQuery(`SELECT`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(17))
	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+questions\s*$`).
		WillReturnRows(rows)

	total, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 17 {
		t.Fatalf("unexpected total: %d", total)
	}
}
