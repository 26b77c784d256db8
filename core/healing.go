package core

import (
	"fmt"
	"time"

	"github.com/embeau/tonelab/schema"
)

// healingColors maps each emotion axis to colors chosen to counteract (or
// amplify, for the positive axes) that state.
var healingColors = map[schema.Axis][]schema.HealingColor{
	schema.AnxietyAxis: {
		{Name: "라벤더", Hex: "#E6E6FA", Effect: "마음을 진정시키고 불안을 완화합니다"},
		{Name: "스카이 블루", Hex: "#87CEEB", Effect: "평온함과 안정감을 선사합니다"},
	},
	schema.StressAxis: {
		{Name: "민트 그린", Hex: "#98FB98", Effect: "긴장을 풀어주고 스트레스를 해소합니다"},
		{Name: "페일 블루", Hex: "#AFEEEE", Effect: "마음의 휴식을 가져다줍니다"},
	},
	schema.DepressionAxis: {
		{Name: "소프트 옐로우", Hex: "#FFFACD", Effect: "밝은 에너지로 기분을 북돋웁니다"},
		{Name: "피치", Hex: "#FFDAB9", Effect: "따뜻함으로 마음을 감싸줍니다"},
	},
	schema.HappinessAxis: {
		{Name: "코랄", Hex: "#FF7F50", Effect: "행복한 에너지를 더욱 증폭시킵니다"},
		{Name: "골드", Hex: "#FFD700", Effect: "긍정적인 기운을 더해줍니다"},
	},
	schema.SatisfactionAxis: {
		{Name: "세이지 그린", Hex: "#9DC183", Effect: "만족감을 지속시키고 균형을 유지합니다"},
		{Name: "소프트 베이지", Hex: "#F5F5DC", Effect: "안정감과 편안함을 선사합니다"},
	},
}

// dailyAffirmations rotate with the day of year alongside the daily color.
var dailyAffirmations = []string{
	"오늘 하루도 당신은 충분히 멋집니다.",
	"작은 것에도 감사하는 하루가 되길 바랍니다.",
	"당신의 존재 자체가 빛나는 하루입니다.",
	"오늘의 색상이 당신에게 평온을 가져다주길 바랍니다.",
	"자신을 믿고 한 걸음씩 나아가세요.",
}

const dailyPersonalFit = "당신의 퍼스널 컬러와 조화롭게 어울려 자연스러운 아름다움을 더해줍니다."

// HealingColorsFor returns the healing colors for a dominant emotion.
// Unknown axes fall back to the stress colors so callers always get a
// non-empty list.
func HealingColorsFor(dominant schema.Axis) []schema.HealingColor {
	if colors, ok := healingColors[dominant]; ok {
		return colors
	}
	return healingColors[schema.StressAxis]
}

// ComputeDailyHealing derives the healing color of the day for a user from
// their stored color profile. The palette rotates with the day of year, so
// the pick is stable within a day and changes across days without storing
// any randomness. A nil observation selects from the default palette.
func ComputeDailyHealing(userID string, obs *schema.ColorObservation, date time.Time) schema.DailyHealing {
	day := schema.DateOnly(date)

	var palette []schema.PaletteColor
	if obs != nil {
		palette = ResolveTonePalette(obs.Season, obs.Tone())
	} else {
		palette = seasonPalettes[defaultPaletteKey]
	}

	dayOfYear := day.YearDay()
	color := palette[dayOfYear%len(palette)]

	return schema.DailyHealing{
		UserID:      userID,
		Date:        day,
		Color:       color,
		CalmEffect:  fmt.Sprintf("%s은(는) 마음을 편안하게 해주고 일상의 스트레스를 완화하는 효과가 있습니다.", color.Name),
		PersonalFit: dailyPersonalFit,
		Affirmation: dailyAffirmations[dayOfYear%len(dailyAffirmations)],
	}
}
