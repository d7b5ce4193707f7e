package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"column:username;unique;not null" json:"username"`
	Email     string `gorm:"column:email;unique;not null" json:"email"`
	Password  string `gorm:"column:password;not null" json:"-"`
	Role      string `gorm:"column:role;default:customer" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
