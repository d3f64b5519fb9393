package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel is the seeded permission tier lookup table.
type RoleModel struct {
	RoleID        uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	RoleName      string    `gorm:"column:role_name;size:20;uniqueIndex;not null" json:"role_name"`
	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}

func (r *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.RoleID == uuid.Nil {
		r.RoleID = uuid.New()
	}
	return nil
}
