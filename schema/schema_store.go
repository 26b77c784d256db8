package schema

import "time"

// SessionRecord represents a row from the tonelab_sessions table.
type SessionRecord struct {
	SessionID     string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Operations    int32
	ConfigParams  *string
}

// FeedbackRecord represents a row from the tonelab_feedback table.
// TargetType names the surface being rated and TargetID the specific
// result, for example a color observation or a recommendation item.
type FeedbackRecord struct {
	UserID      string    `json:"user_id"`
	Rating      int       `json:"rating"`
	TargetType  string    `json:"target_type"`
	TargetID    string    `json:"target_id"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
