package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`

	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	RoleID       uint      `json:"role_id" gorm:"not null;index" validate:"required"`
	FullName     *string   `json:"full_name" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	Members []GroupMember `json:"-" gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	GroupID uint `json:"group_id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"primaryKey"`

	Group *Group `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsAdmin reports whether the user carries the admin role. Role must be
// preloaded; a user without a loaded role is never treated as admin.
func (u *User) IsAdmin() bool {
	return u.Role != nil && u.Role.Name == RoleAdmin
}

func (Role) TableName() string {
	return "roles"
}

func (User) TableName() string {
	return "users"
}

func (Group) TableName() string {
	return "groups_"
}

func (GroupMember) TableName() string {
	return "group_members"
}
