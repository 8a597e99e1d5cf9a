package models

import "time"

type Question struct {
	ID         int64
	Subject    string
	Content    string
	AuthorID   int64
	CreateDate time.Time
}
