package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// VideoRepo definition video record store
type VideoRepo interface {
	AutoMigrate() error
	Create(video *domain.Video) error
	Upsert(video *domain.Video) error
	GetByID(id string) (*domain.Video, error)
	ListAll() ([]domain.Video, error)
	UpdateFields(id string, fields map[string]interface{}) error
	CountByCategory(categoryID string) (int64, error)
	Delete(id string) error
}

type videoRepo struct {
	db *gorm.DB
}

// NewVideoRepo create VideoRepo
func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &videoRepo{db: db}
}

func (r *videoRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Video{})
}

// Create 插入影片，id 未指定時自動生成
func (r *videoRepo) Create(video *domain.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	return r.db.Create(video).Error
}

// Upsert 以 id 為鍵的冪等插入，已存在時不動作
// 投稿晉升用：同一筆 Submission 重複核准不會產生第二支影片
func (r *videoRepo) Upsert(video *domain.Video) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(video).Error
}

func (r *videoRepo) GetByID(id string) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) ListAll() ([]domain.Video, error) {
	var videos []domain.Video
	if err := r.db.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// UpdateFields 部分更新，只動 map 裡的欄位
func (r *videoRepo) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Video{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errprocess.ErrNotFound
	}
	return nil
}

// CountByCategory 統計引用某分類的影片數，分類刪除前的保護檢查用
func (r *videoRepo) CountByCategory(categoryID string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Video{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *videoRepo) Delete(id string) error {
	return r.db.Delete(&domain.Video{}, "id = ?", id).Error
}
