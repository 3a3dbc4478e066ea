package models

import "time"

// AuditLog records mutating requests for troubleshooting.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	Method    string `gorm:"size:16"`
	Path      string `gorm:"size:255"`
	Body      string `gorm:"size:2048"`
	Status    int
	IP        string `gorm:"size:64"`
	CreatedAt time.Time
}
