package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justifyman/alansar/internal/moderation/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// SubmissionRepo definition submission record store
type SubmissionRepo interface {
	AutoMigrate() error
	Create(sub *domain.Submission) error
	GetByID(id string) (*domain.Submission, error)
	ListByStatus(status domain.SubmissionStatus) ([]domain.Submission, error)
	ListByUser(userID string) ([]domain.Submission, error)
	UpdateFields(id string, fields map[string]interface{}) error
	TransitionStatus(id string, from, to domain.SubmissionStatus) (bool, error)
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo create SubmissionRepo
func NewSubmissionRepo(db *gorm.DB) SubmissionRepo {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Submission{})
}

// Create 插入投稿，id 未指定時自動生成
func (r *submissionRepo) Create(sub *domain.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	return r.db.Create(sub).Error
}

func (r *submissionRepo) GetByID(id string) (*domain.Submission, error) {
	var s domain.Submission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByStatus 待審清單用，先送的排前面
func (r *submissionRepo) ListByStatus(status domain.SubmissionStatus) ([]domain.Submission, error) {
	var subs []domain.Submission
	if err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// ListByUser 投稿者自己的歷史，最新的排前面
func (r *submissionRepo) ListByUser(userID string) ([]domain.Submission, error) {
	var subs []domain.Submission
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// UpdateFields 部分更新，狀態欄位不走這裡
func (r *submissionRepo) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&domain.Submission{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errprocess.ErrNotFound
	}
	return nil
}

// TransitionStatus 條件更新：只有目前狀態還是 from 才改成 to。
// 回傳 false 表示有別的 session 先改走了（或 id 不存在），樂觀鎖失敗
func (r *submissionRepo) TransitionStatus(id string, from, to domain.SubmissionStatus) (bool, error) {
	result := r.db.Model(&domain.Submission{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
