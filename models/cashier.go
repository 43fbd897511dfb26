package models

import "time"

// Cashier roles.
const (
	RoleCashier    = "cashier"
	RoleSupervisor = "supervisor"
)

// Cashier is a staff member allowed to operate the register. PIN is stored as
// a bcrypt hash.
type Cashier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	PINHash   string    `gorm:"type:varchar(100);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'cashier'" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
