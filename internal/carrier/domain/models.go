// Package domain defines the carrier directory referenced by rate cards.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Carrier is a shipping line, airline or haulier rate cards belong to.
type Carrier struct {
	ID        snowflake.ID `json:"id,string" gorm:"primaryKey"`
	Code      string       `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name      string       `json:"name" gorm:"type:text;not null"`
	SCAC      string       `json:"scac" gorm:"column:scac;type:text"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Carrier) TableName() string { return "carriers" }

type CreateRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	SCAC string `json:"scac"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Carrier, error)
	List(ctx context.Context) ([]Carrier, error)
	Get(ctx context.Context, id string) (*Carrier, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, carrier *Carrier) error
	FindAll(ctx context.Context, db *gorm.DB) ([]Carrier, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Carrier, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Carrier, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
