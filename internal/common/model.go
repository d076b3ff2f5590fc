// File: internal/common/model.go
package common

import (
	"time"
)

// BaseModel defines common fields for GORM models. IDs are database-assigned
// auto-increment surrogates used for relations between tables.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}
