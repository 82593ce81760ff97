package models

import "time"

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Blog{}, &Post{}, &Comment{}, &PageView{}}
}

// Today returns the current calendar date as midnight UTC, the form stored in date columns.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Ptr returns a pointer to id, for nullable foreign keys.
func Ptr(id uint) *uint {
	return &id
}
