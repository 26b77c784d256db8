package core

import (
	"math"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// Weekly aggregation constants.
const (
	defaultBaseline  = 50.0 // assumed prior-week mean when no prior data exists
	activeDayWeight  = 15.0 // engagement points per active day
	improvementBound = 100.0
	highAxisLevel    = 60.0 // mean above this marks a stressed or anxious week
)

// Advisory text for a week without any recorded emotions.
const (
	emptyWeekInsight = "이번 주에 기록된 감정이 없습니다. 매일 감정을 기록해보세요!"
	emptyWeekAdvice  = "다음 주에는 하루에 한 번씩 감정을 기록해보는 것은 어떨까요?"
)

// PrevWeekBaseline carries the prior week's mean happiness and stress for
// the week-over-week improvement metrics.
type PrevWeekBaseline struct {
	Happiness float64
	Stress    float64
}

// BaselineFromEntries reduces the prior week's raw observations to a
// baseline. It returns nil when that week has no entries, in which case
// the default baseline applies.
func BaselineFromEntries(entries []schema.EmotionObservation) *PrevWeekBaseline {
	if len(entries) == 0 {
		return nil
	}
	var happiness, stress float64
	for _, e := range entries {
		happiness += e.Scores.Happiness
		stress += e.Scores.Stress
	}
	n := float64(len(entries))
	return &PrevWeekBaseline{Happiness: happiness / n, Stress: stress / n}
}

// AggregateWeek reduces one user's observations for a single week into a
// WeeklyAggregate. Callers must pre-filter entries to
// [weekStart, weekStart+7d). An empty week yields the canonical zero
// aggregate with advisory text; that result must never be persisted or
// memoized, so a late first entry still produces a real aggregate.
func AggregateWeek(userID string, weekStart time.Time, entries []schema.EmotionObservation, prev *PrevWeekBaseline) schema.WeeklyAggregate {
	agg := schema.WeeklyAggregate{
		UserID:     userID,
		WeekStart:  weekStart,
		ComputedAt: time.Now().UTC(),
	}

	if len(entries) == 0 {
		agg.Insight = emptyWeekInsight
		agg.Advice = emptyWeekAdvice
		return agg
	}

	var sum schema.EmotionScores
	days := make(map[string]struct{})
	for _, e := range entries {
		sum.Anxiety += e.Scores.Anxiety
		sum.Stress += e.Scores.Stress
		sum.Satisfaction += e.Scores.Satisfaction
		sum.Happiness += e.Scores.Happiness
		sum.Depression += e.Scores.Depression
		days[e.RecordedAt.UTC().Format(contract.DateFormat)] = struct{}{}
	}

	n := float64(len(entries))
	agg.Averages = schema.EmotionScores{
		Anxiety:      sum.Anxiety / n,
		Stress:       sum.Stress / n,
		Satisfaction: sum.Satisfaction / n,
		Happiness:    sum.Happiness / n,
		Depression:   sum.Depression / n,
	}
	agg.ActiveDays = len(days)
	agg.TotalEntries = len(entries)

	prevHappiness, prevStress := defaultBaseline, defaultBaseline
	if prev != nil {
		prevHappiness, prevStress = prev.Happiness, prev.Stress
	}
	agg.MoodImprovement = clampImprovement((agg.Averages.Happiness - prevHappiness) / math.Max(prevHappiness, 1) * 100)
	agg.StressRelief = clampImprovement((prevStress - agg.Averages.Stress) / math.Max(prevStress, 1) * 100)
	agg.ColorImprovement = math.Min(float64(agg.ActiveDays)*activeDayWeight, 100)

	agg.Insight, agg.Advice = weeklyInsight(agg.Averages)
	return agg
}

func clampImprovement(v float64) float64 {
	return math.Max(math.Min(v, improvementBound), -improvementBound)
}

// weeklyInsight maps the weekly averages to a short reflection and a
// suggestion for the coming week.
func weeklyInsight(avg schema.EmotionScores) (insight, advice string) {
	positive := (avg.Satisfaction + avg.Happiness) / 2
	negative := (avg.Anxiety + avg.Stress + avg.Depression) / 3

	switch {
	case positive > negative:
		return "이번 주는 전반적으로 긍정적인 감정이 우세했습니다. 좋은 한 주였네요!",
			"다음 주에도 현재의 긍정적인 상태를 유지하면서 작은 기쁨들을 찾아보세요."
	case avg.Stress > highAxisLevel:
		return "이번 주는 스트레스가 높았던 것 같습니다. 충분한 휴식이 필요해 보여요.",
			"다음 주에는 자신을 위한 시간을 조금 더 가져보는 건 어떨까요?"
	case avg.Anxiety > highAxisLevel:
		return "불안한 마음이 많았던 한 주였네요. 당신의 감정은 충분히 이해됩니다.",
			"깊은 호흡과 함께 천천히 마음을 가라앉혀 보세요."
	default:
		return "다양한 감정을 경험한 한 주였습니다.",
			"다음 주에는 힐링 컬러와 함께 마음의 평화를 찾아보세요."
	}
}
