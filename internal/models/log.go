package models

import "time"

// AuditLog records an authenticated request. PathEnc holds the AES-GCM
// ciphertext of the request path when an encryption key is configured.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:36;index;not null"`
	Method    string    `gorm:"size:16"`
	PathEnc   string    `gorm:"size:1024"`
	Status    int
	IP        string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index"`
}
