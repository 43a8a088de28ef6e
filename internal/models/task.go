package models

import "time"

// Task is a single to-do item. Ids are assigned by the store and never
// change after creation. CreatedAt/UpdatedAt are internal bookkeeping and
// stay out of the JSON representation.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
