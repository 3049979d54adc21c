package models

import "time"

type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

type Statistics struct {
	Total     int
	Completed int
	Pending   int
}
