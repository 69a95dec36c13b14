package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account (admin, doctor, therapist). Patients have no row
// here; their principal is synthesized from the patients table at login.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;uniqueIndex:idx_users_username_role" json:"role_id"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username_role" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role projects the stored role ID onto the closed Role set.
func (u *User) Role() (Role, bool) {
	return RoleByID(u.RoleID)
}
