package domain

import "time"

// 審核動作類別
const (
	// AuditApprove 核准投稿
	AuditApprove = "approve"
	// AuditReject 駁回投稿
	AuditReject = "reject"
	// AuditEdit 編輯投稿欄位
	AuditEdit = "edit"
)

// AuditEntry 審核軌跡，一筆記錄誰在什麼時候對哪個投稿做了什麼
type AuditEntry struct {
	SubmissionID string    `bson:"submission_id" json:"submission_id"`
	Action       string    `bson:"action" json:"action"`
	AdminID      string    `bson:"admin_id" json:"admin_id"`
	CategoryID   string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}
