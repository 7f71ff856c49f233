package domain

import (
	"io"
	"time"
)

// SubmissionStatus definition submission status
type SubmissionStatus string

const (
	// SubmissionPending 投稿送審後的初始狀態
	SubmissionPending SubmissionStatus = "pending"
	// SubmissionApproved 核准後的終止狀態，內容已晉升進公開目錄
	SubmissionApproved SubmissionStatus = "approved"
	// SubmissionRejected 駁回後的終止狀態
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission 使用者投稿。狀態只會 pending → approved 或 pending → rejected，
// 進入終止狀態後不再變化，也沒有重新排隊的路徑
type Submission struct {
	ID           string           `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string           `gorm:"index" json:"user_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	VideoURL     string           `json:"video_url"`
	ThumbnailURL string           `json:"thumbnail_url"`
	Status       SubmissionStatus `gorm:"type:varchar(16);index" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TableName 沿用原始資料表名
func (Submission) TableName() string {
	return "user_uploads"
}

// MediaFile 上傳檔案的串流與中繼資料
type MediaFile struct {
	FileName    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// SubmitReq usecase submit request
type SubmitReq struct {
	UserID        string
	Title         string
	Description   string
	VideoFile     *MediaFile
	ThumbnailFile *MediaFile
}

// SubmissionPatch 投稿部分更新，nil 欄位不變，狀態不在可編輯範圍
type SubmissionPatch struct {
	Title       *string
	Description *string
}
