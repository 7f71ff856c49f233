package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/justifyman/alansar/internal/catalog/domain"
	catalogrepo "github.com/justifyman/alansar/internal/catalog/repository"
	"github.com/justifyman/alansar/internal/moderation/domain"
	"github.com/justifyman/alansar/internal/moderation/repository"
	"github.com/justifyman/alansar/pkg/database"
	errprocess "github.com/justifyman/alansar/pkg/err"
	"github.com/justifyman/alansar/pkg/logger"
)

// ModerationUseCase 這裡封裝了管理端審核投稿的應用服務
type ModerationUseCase interface {
	ListPending(ctx context.Context) ([]domain.Submission, error)
	Approve(ctx context.Context, submissionID, categoryID, adminID string) (*catalogdomain.Video, error)
	Reject(ctx context.Context, submissionID, adminID string) error
	Edit(ctx context.Context, submissionID string, patch domain.SubmissionPatch, adminID string) error
	AuditTrail(ctx context.Context, submissionID string) ([]domain.AuditEntry, error)
}

type moderationUseCase struct {
	submissionRepo repository.SubmissionRepo
	categoryRepo   catalogrepo.CategoryRepo
	videoRepo      catalogrepo.VideoRepo
	auditRepo      repository.AuditRepo
	eventWriter    database.KafkaRepo
}

// NewModerationUseCase 建立一個新的 ModerationUseCase
func NewModerationUseCase(submissionRepo repository.SubmissionRepo,
	categoryRepo catalogrepo.CategoryRepo,
	videoRepo catalogrepo.VideoRepo,
	auditRepo repository.AuditRepo,
	eventWriter database.KafkaRepo,
) ModerationUseCase {
	return &moderationUseCase{
		submissionRepo: submissionRepo,
		categoryRepo:   categoryRepo,
		videoRepo:      videoRepo,
		auditRepo:      auditRepo,
		eventWriter:    eventWriter,
	}
}

// ListPending 待審核的投稿，先送的排前面
func (m *moderationUseCase) ListPending(ctx context.Context) ([]domain.Submission, error) {
	return m.submissionRepo.ListByStatus(domain.SubmissionPending)
}

// Approve 核准投稿並晉升進公開目錄。
// 晉升的 Video 直接沿用 Submission 的 id，所以重跑核准不會產生第二支
// 影片；狀態翻轉是 status=pending 的條件更新，翻轉失敗代表別的
// session 已經先審掉了，回 ErrConflict
func (m *moderationUseCase) Approve(ctx context.Context, submissionID, categoryID, adminID string) (*catalogdomain.Video, error) {
	sub, err := m.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, err
	}

	if sub.Status != domain.SubmissionPending {
		return nil, errprocess.Setf(errprocess.ErrConflict, "submissionID[%s] 狀態已是 %s，不能再核准", submissionID, sub.Status)
	}

	if categoryID == "" {
		return nil, errprocess.Setf(errprocess.ErrMissingCategory, "submissionID[%s] 核准必須指定分類", submissionID)
	}
	if _, err := m.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, errprocess.ErrNotFound) {
			return nil, errprocess.Setf(errprocess.ErrMissingCategory, "submissionID[%s] 分類[%s] 不存在", submissionID, categoryID)
		}
		return nil, err
	}

	video := catalogdomain.Video{
		ID:           sub.ID,
		Title:        sub.Title,
		Description:  sub.Description,
		CategoryID:   &categoryID,
		VideoURL:     sub.VideoURL,
		ThumbnailURL: sub.ThumbnailURL,
	}
	if err := m.videoRepo.Upsert(&video); err != nil {
		// 晉升失敗則整個轉移中止，Submission 維持 pending 可重試
		return nil, errprocess.Set(fmt.Sprintf("submissionID[%s] 晉升影片失敗 : %v", submissionID, err))
	}

	ok, err := m.submissionRepo.TransitionStatus(submissionID, domain.SubmissionPending, domain.SubmissionApproved)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("submissionID[%s] 更新狀態失敗 : %v", submissionID, err))
	}
	if !ok {
		return nil, errprocess.Setf(errprocess.ErrConflict, "submissionID[%s] 已被其他管理員審核", submissionID)
	}

	m.record(ctx, domain.AuditEntry{
		SubmissionID: submissionID,
		Action:       domain.AuditApprove,
		AdminID:      adminID,
		CategoryID:   categoryID,
		Timestamp:    time.Now(),
	})
	m.publish(ctx, domain.ModerationEvent{
		Type:         domain.EventSubmissionApproved,
		SubmissionID: submissionID,
		UserID:       sub.UserID,
		VideoID:      video.ID,
		CategoryID:   categoryID,
		AdminID:      adminID,
		Timestamp:    time.Now(),
	})

	return &video, nil
}

// Reject 駁回投稿，不會建立任何 Video
func (m *moderationUseCase) Reject(ctx context.Context, submissionID, adminID string) error {
	sub, err := m.submissionRepo.GetByID(submissionID)
	if err != nil {
		return err
	}

	if sub.Status != domain.SubmissionPending {
		return errprocess.Setf(errprocess.ErrConflict, "submissionID[%s] 狀態已是 %s，不能再駁回", submissionID, sub.Status)
	}

	ok, err := m.submissionRepo.TransitionStatus(submissionID, domain.SubmissionPending, domain.SubmissionRejected)
	if err != nil {
		return errprocess.Set(fmt.Sprintf("submissionID[%s] 更新狀態失敗 : %v", submissionID, err))
	}
	if !ok {
		return errprocess.Setf(errprocess.ErrConflict, "submissionID[%s] 已被其他管理員審核", submissionID)
	}

	m.record(ctx, domain.AuditEntry{
		SubmissionID: submissionID,
		Action:       domain.AuditReject,
		AdminID:      adminID,
		Timestamp:    time.Now(),
	})
	m.publish(ctx, domain.ModerationEvent{
		Type:         domain.EventSubmissionRejected,
		SubmissionID: submissionID,
		UserID:       sub.UserID,
		AdminID:      adminID,
		Timestamp:    time.Now(),
	})

	return nil
}

// Edit 編輯投稿欄位，任何狀態都允許，但不動 status，
// 也不會回寫到已晉升的 Video
func (m *moderationUseCase) Edit(ctx context.Context, submissionID string, patch domain.SubmissionPatch, adminID string) error {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	if len(fields) == 0 {
		return nil
	}

	if err := m.submissionRepo.UpdateFields(submissionID, fields); err != nil {
		return err
	}

	m.record(ctx, domain.AuditEntry{
		SubmissionID: submissionID,
		Action:       domain.AuditEdit,
		AdminID:      adminID,
		Timestamp:    time.Now(),
	})

	return nil
}

// AuditTrail 某個投稿的審核軌跡
func (m *moderationUseCase) AuditTrail(ctx context.Context, submissionID string) ([]domain.AuditEntry, error) {
	return m.auditRepo.ListBySubmission(ctx, submissionID)
}

// record 寫審核軌跡，失敗只記日誌，不影響已完成的狀態轉移
func (m *moderationUseCase) record(ctx context.Context, entry domain.AuditEntry) {
	if err := m.auditRepo.Insert(ctx, &entry); err != nil {
		logger.Log.Errorf(fmt.Sprintf("submissionID[%s] 寫入審核軌跡失敗", entry.SubmissionID), err)
	}
}

// publish 發佈審核事件，失敗只記日誌，不影響已完成的狀態轉移
func (m *moderationUseCase) publish(ctx context.Context, event domain.ModerationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorf(fmt.Sprintf("submissionID[%s] 審核事件序列化失敗", event.SubmissionID), err)
		return
	}
	if err := m.eventWriter.Publish(ctx, []byte(event.SubmissionID), data); err != nil {
		logger.Log.Errorf(fmt.Sprintf("submissionID[%s] 發佈審核事件失敗", event.SubmissionID), err)
	}
}
