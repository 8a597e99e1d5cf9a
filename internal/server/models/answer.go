package models

import "time"

type Answer struct {
	ID         int64
	QuestionID int64
	Content    string
	AuthorID   int64
	CreateDate time.Time
}
