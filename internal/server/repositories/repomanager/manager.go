package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/goboard/internal/dbx"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/answers"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/questions"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Questions(db dbx.DBTX) questions.Repository
	Answers(db dbx.DBTX) answers.Repository
}
