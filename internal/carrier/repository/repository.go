package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() carrierdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, carrier *carrierdomain.Carrier) error {
	return db.WithContext(ctx).Create(carrier).Error
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]carrierdomain.Carrier, error) {
	var items []carrierdomain.Carrier
	err := db.WithContext(ctx).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*carrierdomain.Carrier, error) {
	var item carrierdomain.Carrier
	err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*carrierdomain.Carrier, error) {
	var item carrierdomain.Carrier
	err := db.WithContext(ctx).Where("code = ?", code).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&carrierdomain.Carrier{}).Error
}
