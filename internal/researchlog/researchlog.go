// Package researchlog appends user action events to a JSONL file for
// research analytics.
package researchlog

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/embeau/tonelab/internal/contract"
)

// Action identifies one entry of the fixed research event vocabulary.
type Action string

// All research actions tracked.
const (
	AuthLogin              Action = "auth.login"
	AuthLogout             Action = "auth.logout"
	ColorAnalyzeStart      Action = "color.analyze.start"
	ColorAnalyzeComplete   Action = "color.analyze.complete"
	ColorResultView        Action = "color.result.view"
	DailyHealingView       Action = "color.daily_healing.view"
	EmotionAnalyzeStart    Action = "emotion.analyze.start"
	EmotionAnalyzeComplete Action = "emotion.analyze.complete"
	EmotionHistoryView     Action = "emotion.history.view"
	RecommendationView     Action = "recommendation.view"
	RecommendationClick    Action = "recommendation.click"
	WeeklyInsightView      Action = "insight.weekly.view"
	ReportDownload         Action = "insight.report.download"
	FeedbackSubmit         Action = "feedback.submit"
	NavigationPageView     Action = "navigation.page_view"
	SessionStart           Action = "session.start"
	SessionEnd             Action = "session.end"
)

// Event is one research log line. Emotion events carry input lengths only;
// raw text never reaches the log.
type Event struct {
	Timestamp  time.Time      `json:"timestamp"`
	UserID     string         `json:"user_id,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Action     Action         `json:"action_type"`
	Data       map[string]any `json:"action_data"`
	DurationMS int64          `json:"duration_ms,omitempty"`
}

// Logger appends events to a single JSONL file. The zero value and a
// disabled logger both discard every event, so call sites never need an
// enabled check.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New opens the research log for appending. A disabled or unopenable log
// degrades to a no-op logger; research logging never fails the pipeline.
func New(path string, enabled bool) *Logger {
	if !enabled {
		return &Logger{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		contract.LogWarn("Research log unavailable", err)
		return &Logger{}
	}
	return &Logger{file: f}
}

// Log appends one event with the current UTC timestamp.
func (l *Logger) Log(action Action, userID, sessionID string, data map[string]any) {
	l.append(Event{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		SessionID: sessionID,
		Action:    action,
		Data:      data,
	})
}

// LogTimed appends one event carrying the elapsed duration of the operation
// it describes.
func (l *Logger) LogTimed(action Action, userID, sessionID string, data map[string]any, duration time.Duration) {
	l.append(Event{
		Timestamp:  time.Now().UTC(),
		UserID:     userID,
		SessionID:  sessionID,
		Action:     action,
		Data:       data,
		DurationMS: duration.Milliseconds(),
	})
}

func (l *Logger) append(event Event) {
	if l == nil || l.file == nil {
		return
	}
	if event.Data == nil {
		event.Data = map[string]any{}
	}

	line, err := json.Marshal(event)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		contract.LogWarn("Research log write failed", err)
	}
}

// Close releases the underlying file. Closing a disabled logger is a no-op.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
