// Package migrations applies the PostgreSQL schema for both bounded
// contexts in one place instead of adapter-level automigrate.
package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&sessionRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID        string     `gorm:"primaryKey;column:id;size:64"`
	Seq       int        `gorm:"column:seq;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	Name      string     `gorm:"column:name"`
	Email     string     `gorm:"column:email"`
	Address   string     `gorm:"column:address"`
	Qty       int        `gorm:"column:qty"`
	Total     int64      `gorm:"column:total"`
	Currency  string     `gorm:"column:currency;size:8"`
	Status    string     `gorm:"column:status;type:varchar(16);index"`
	Method    string     `gorm:"column:payment_method;size:32"`
	PaidAt    *time.Time `gorm:"column:paid_at"`
	Last4     *string    `gorm:"column:last4;size:4"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Session schema mirrors the admin session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "admin_sessions" }
