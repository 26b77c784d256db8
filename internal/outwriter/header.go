package outwriter

import (
	"fmt"

	"github.com/embeau/tonelab/internal/contract"
)

// LogAnalysisHeader prints a concise, 2-line header for each analysis phase.
func LogAnalysisHeader(cfg *contract.Config, operation string) {
	user := cfg.UserID
	if user == "" {
		user = "all"
	}

	// Line 1: The run summary (User and Operation)
	fmt.Printf("%sUser: %s (Operation: %s)\n", emojiPrefix(cfg, "🔎"), user, operation)

	// Line 2: The week window the run targets
	weekEnd := cfg.WeekStart.AddDate(0, 0, 7)
	fmt.Printf("%sWeek: %s → %s\n", emojiPrefix(cfg, "📅"),
		cfg.WeekStart.Format(contract.DateFormat), weekEnd.Format(contract.DateFormat))
}

// emojiPrefix returns the emoji with a trailing space when emoji output is
// enabled, and an empty string otherwise.
func emojiPrefix(cfg *contract.Config, emoji string) string {
	if cfg.UseEmojis {
		return emoji + " "
	}
	return ""
}
