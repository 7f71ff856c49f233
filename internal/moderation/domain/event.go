package domain

import "time"

// 審核事件類別，發佈到 Kafka 給下游（通知、統計）消費
const (
	// EventSubmissionApproved 投稿核准事件
	EventSubmissionApproved = "submission.approved"
	// EventSubmissionRejected 投稿駁回事件
	EventSubmissionRejected = "submission.rejected"
)

// ModerationEvent 審核狀態轉移事件
type ModerationEvent struct {
	Type         string    `json:"type"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	VideoID      string    `json:"video_id,omitempty"`
	CategoryID   string    `json:"category_id,omitempty"`
	AdminID      string    `json:"admin_id"`
	Timestamp    time.Time `json:"timestamp"`
}
