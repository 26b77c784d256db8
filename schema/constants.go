package schema

// Custom string types for type safety.
type (
	// Season represents a personal color season.
	Season string

	// Subtype represents the variant within a season.
	Subtype string

	// Tone represents the undertone derived from a subtype.
	Tone string

	// Axis represents one tracked emotion axis.
	Axis string

	// ClassificationSource represents how a classification was produced.
	ClassificationSource string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All seasons supported.
const (
	SpringSeason Season = "spring"
	SummerSeason Season = "summer"
	AutumnSeason Season = "autumn"
	WinterSeason Season = "winter"
)

// All subtypes supported.
const (
	WarmSubtype  Subtype = "warm"
	CoolSubtype  Subtype = "cool"
	ClearSubtype Subtype = "clear"
	SoftSubtype  Subtype = "soft"
	DeepSubtype  Subtype = "deep"
	LightSubtype Subtype = "light"
)

// All tones supported.
const (
	WarmTone Tone = "warm"
	CoolTone Tone = "cool"
)

// All emotion axes tracked.
const (
	AnxietyAxis      Axis = "anxiety"
	StressAxis       Axis = "stress"
	SatisfactionAxis Axis = "satisfaction"
	HappinessAxis    Axis = "happiness"
	DepressionAxis   Axis = "depression"
)

// All classification sources.
const (
	MeasuredSource ClassificationSource = "measured"
	FallbackSource ClassificationSource = "fallback"
)

// Fallback reasons recorded on degraded classifications.
const (
	FallbackEmptyMask    = "empty_mask"
	FallbackSegmentation = "segmentation_failed"
	FallbackDecode       = "decode_failed"
	FallbackProvider     = "invalid_provider_output"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All feedback target surfaces.
const (
	FeedbackColorResult    = "color_result"
	FeedbackEmotionMap     = "emotion_map"
	FeedbackHealingColor   = "healing_color"
	FeedbackRecommendation = "recommendation"
)

// AllSeasons returns a list of all supported seasons.
var AllSeasons = []Season{SpringSeason, SummerSeason, AutumnSeason, WinterSeason}

// AllSubtypes returns a list of all supported subtypes.
var AllSubtypes = []Subtype{WarmSubtype, CoolSubtype, ClearSubtype, SoftSubtype, DeepSubtype, LightSubtype}

// AllAxes returns emotion axes in canonical order. Negative-axis tie breaks
// resolve in this order: anxiety, then stress, then depression.
var AllAxes = []Axis{AnxietyAxis, StressAxis, SatisfactionAxis, HappinessAxis, DepressionAxis}

// NegativeAxes returns the negative axes in tie-break priority order.
var NegativeAxes = []Axis{AnxietyAxis, StressAxis, DepressionAxis}

// ValidSeasons lists all valid seasons.
var ValidSeasons = map[Season]struct{}{
	SpringSeason: {},
	SummerSeason: {},
	AutumnSeason: {},
	WinterSeason: {},
}

// ValidSubtypes lists all valid subtypes.
var ValidSubtypes = map[Subtype]struct{}{
	WarmSubtype:  {},
	CoolSubtype:  {},
	ClearSubtype: {},
	SoftSubtype:  {},
	DeepSubtype:  {},
	LightSubtype: {},
}

// ValidAxes lists all valid emotion axes.
var ValidAxes = map[Axis]struct{}{
	AnxietyAxis:      {},
	StressAxis:       {},
	SatisfactionAxis: {},
	HappinessAxis:    {},
	DepressionAxis:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidFeedbackTargets lists all valid feedback target surfaces.
var ValidFeedbackTargets = map[string]struct{}{
	FeedbackColorResult:    {},
	FeedbackEmotionMap:     {},
	FeedbackHealingColor:   {},
	FeedbackRecommendation: {},
}

// coolSubtypes are the subtypes carrying a cool undertone.
var coolSubtypes = map[Subtype]struct{}{
	CoolSubtype:  {},
	ClearSubtype: {},
	SoftSubtype:  {},
}

// DeriveTone maps a subtype to its undertone. Cool covers the cool, clear
// and soft subtypes; every other subtype is warm.
func DeriveTone(subtype Subtype) Tone {
	if _, ok := coolSubtypes[subtype]; ok {
		return CoolTone
	}
	return WarmTone
}
