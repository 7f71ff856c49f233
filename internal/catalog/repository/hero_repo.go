package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// HeroRepo definition hero record store，整站單筆
type HeroRepo interface {
	AutoMigrate() error
	Get() (*domain.Hero, error)
	UpdateFields(id string, fields map[string]interface{}) error
}

type heroRepo struct {
	db *gorm.DB
}

// NewHeroRepo create HeroRepo
func NewHeroRepo(db *gorm.DB) HeroRepo {
	return &heroRepo{db: db}
}

func (r *heroRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Hero{})
}

// Get 取橫幅，單列查詢，零筆視為 not found
func (r *heroRepo) Get() (*domain.Hero, error) {
	var h domain.Hero
	if err := r.db.First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *heroRepo) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&domain.Hero{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errprocess.ErrNotFound
	}
	return nil
}
