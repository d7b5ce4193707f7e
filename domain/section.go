package domain

import "time"

// Section is a top-level catalog category. Deleting a section cascades to
// its products (handled in the repository, image files included).
type Section struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Section) TableName() string {
	return "sections"
}
