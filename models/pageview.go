package models

import "time"

// PageView is a per-day hit counter for one request path.
type PageView struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"index:idx_pv_date_path,unique;type:date;not null"`
	Path      string    `gorm:"index;index:idx_pv_date_path,unique;size:255;not null"`
	Count     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
