package models

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleTester UserRole = "tester"
)

type User struct {
	Model
	Username     string   `json:"username" gorm:"type:text;uniqueIndex;not null;"`
	PasswordHash string   `json:"-" gorm:"type:text;not null;"`
	FullName     string   `json:"fullName" gorm:"type:text"`
	Role         UserRole `json:"role" gorm:"type:text;default:'tester';not null;"`
}

func (u User) TableName() string {
	return "users"
}
