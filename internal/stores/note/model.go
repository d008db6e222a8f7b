package note

import (
	"time"
)

// Note represents a single note record
//
// Timestamps are managed by the service layer rather than GORM so that
// operations which intentionally skip the updated timestamp can do so.
type Note struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Subject     string    `json:"subject" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Likes       int       `json:"likes" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName specifies the database table name for GORM
func (*Note) TableName() string {
	return "notes"
}
