package model

import (
	"time"

	"kda/internal/domain/entity"
)

// UserModel mirrors the 'users' table. Username is the natural primary key;
// every session and role link references it.
type UserModel struct {
	Username     string `gorm:"type:varchar(100);primary_key"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []UserRoleModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model into its domain entity.
func (m *UserModel) ToEntity() *entity.User {
	roles := make([]string, 0, len(m.Roles))
	for _, role := range m.Roles {
		roles = append(roles, role.Role)
	}

	return &entity.User{
		Username:     m.Username,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(roles),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain user into its persistence model.
func UserModelFromEntity(user *entity.User) *UserModel {
	roles := make([]UserRoleModel, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, UserRoleModel{
			Username: user.Username,
			Role:     string(role),
		})
	}

	return &UserModel{
		Username:     user.Username,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Roles:        roles,
	}
}

// UserRoleModel mirrors the 'user_roles' table. One row per role grant.
type UserRoleModel struct {
	ID       uint   `gorm:"primary_key;autoIncrement"`
	Username string `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_roles_username_role"`
	Role     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_username_role"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
