package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Username    string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt   time.Time  `gorm:"not null"`
	LastLoginAt *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		ID:          m.ID,
		Username:    m.Username,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.CreatedAt = u.CreatedAt
	m.LastLoginAt = u.LastLoginAt
}
