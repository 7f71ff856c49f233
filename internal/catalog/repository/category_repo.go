package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// CategoryRepo definition category record store
type CategoryRepo interface {
	AutoMigrate() error
	Create(category *domain.Category) error
	GetByID(id string) (*domain.Category, error)
	ListOrdered() ([]domain.Category, error)
	Count() (int64, error)
	Delete(id string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo create CategoryRepo
func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{})
}

// Create 插入分類，id 未指定時自動生成
func (r *categoryRepo) Create(category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return r.db.Create(category).Error
}

func (r *categoryRepo) GetByID(id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListOrdered 按 position 升序取全部分類
func (r *categoryRepo) ListOrdered() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Order("position ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepo) Delete(id string) error {
	return r.db.Delete(&domain.Category{}, "id = ?", id).Error
}
