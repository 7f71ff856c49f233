package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// AnnouncementRepo definition announcement record store
type AnnouncementRepo interface {
	AutoMigrate() error
	Create(a *domain.Announcement) error
	ListOrdered() ([]domain.Announcement, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo create AnnouncementRepo
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepo {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Announcement{})
}

func (r *announcementRepo) Create(a *domain.Announcement) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return r.db.Create(a).Error
}

// ListOrdered 按 position 升序取全部公告
func (r *announcementRepo) ListOrdered() ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	if err := r.db.Order("position ASC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepo) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&domain.Announcement{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errprocess.ErrNotFound
	}
	return nil
}

func (r *announcementRepo) Delete(id string) error {
	return r.db.Delete(&domain.Announcement{}, "id = ?", id).Error
}
