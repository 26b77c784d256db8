package core

import "github.com/embeau/tonelab/schema"

// seasonPalettes holds the curated five-color palette for each supported
// season and subtype combination. Keys follow the "<season>_<subtype>"
// convention that also appears in stored observations and research logs.
var seasonPalettes = map[string][]schema.PaletteColor{
	"spring_warm": {
		{Name: "코랄", Hex: "#FF7F50", Description: "따뜻하고 생기 있는 코랄"},
		{Name: "피치", Hex: "#FFDAB9", Description: "부드러운 복숭아빛"},
		{Name: "골든 옐로우", Hex: "#FFD700", Description: "밝고 화사한 금색"},
		{Name: "라이트 그린", Hex: "#90EE90", Description: "싱그러운 연두색"},
		{Name: "아이보리", Hex: "#FFFFF0", Description: "따뜻한 아이보리"},
	},
	"spring_clear": {
		{Name: "브라이트 코랄", Hex: "#FF6B6B", Description: "선명한 코랄"},
		{Name: "터콰이즈", Hex: "#40E0D0", Description: "맑은 청록색"},
		{Name: "선 옐로우", Hex: "#FFEF00", Description: "맑고 밝은 노랑"},
		{Name: "페퍼민트", Hex: "#98FF98", Description: "상쾌한 민트색"},
		{Name: "퓨어 화이트", Hex: "#FFFFFF", Description: "깨끗한 순백색"},
	},
	"summer_cool": {
		{Name: "라벤더", Hex: "#E6E6FA", Description: "차분한 라벤더"},
		{Name: "스카이 블루", Hex: "#87CEEB", Description: "시원한 하늘색"},
		{Name: "소프트 핑크", Hex: "#FFB6C1", Description: "부드러운 분홍"},
		{Name: "민트 그린", Hex: "#98FB98", Description: "청량한 민트"},
		{Name: "페일 그레이", Hex: "#D3D3D3", Description: "세련된 회색"},
	},
	"summer_soft": {
		{Name: "더스티 핑크", Hex: "#D8A9A9", Description: "차분한 더스티 핑크"},
		{Name: "세이지 그린", Hex: "#9DC183", Description: "부드러운 세이지"},
		{Name: "모브", Hex: "#E0B0FF", Description: "우아한 모브"},
		{Name: "블루 그레이", Hex: "#6699CC", Description: "세련된 블루 그레이"},
		{Name: "로즈 베이지", Hex: "#C4A484", Description: "따뜻한 로즈 베이지"},
	},
	"autumn_warm": {
		{Name: "테라코타", Hex: "#E2725B", Description: "따뜻한 테라코타"},
		{Name: "머스타드", Hex: "#FFDB58", Description: "깊은 머스타드"},
		{Name: "올리브 그린", Hex: "#808000", Description: "자연스러운 올리브"},
		{Name: "버건디", Hex: "#800020", Description: "깊은 버건디"},
		{Name: "카멜", Hex: "#C19A6B", Description: "클래식한 카멜"},
	},
	"autumn_deep": {
		{Name: "초콜릿", Hex: "#7B3F00", Description: "깊은 초콜릿 브라운"},
		{Name: "포레스트 그린", Hex: "#228B22", Description: "깊은 숲색"},
		{Name: "퍼플 와인", Hex: "#722F37", Description: "고급스러운 와인색"},
		{Name: "브릭 레드", Hex: "#CB4154", Description: "따뜻한 벽돌색"},
		{Name: "골드", Hex: "#D4AF37", Description: "우아한 골드"},
	},
	"winter_cool": {
		{Name: "로얄 블루", Hex: "#4169E1", Description: "선명한 로얄 블루"},
		{Name: "퓨시아", Hex: "#FF00FF", Description: "강렬한 퓨시아"},
		{Name: "에메랄드", Hex: "#50C878", Description: "선명한 에메랄드"},
		{Name: "퓨어 화이트", Hex: "#FFFFFF", Description: "순수한 화이트"},
		{Name: "실버", Hex: "#C0C0C0", Description: "차가운 실버"},
	},
	"winter_clear": {
		{Name: "트루 레드", Hex: "#FF0000", Description: "선명한 빨강"},
		{Name: "일렉트릭 블루", Hex: "#7DF9FF", Description: "강렬한 일렉트릭 블루"},
		{Name: "핫 핑크", Hex: "#FF69B4", Description: "화려한 핫 핑크"},
		{Name: "블랙", Hex: "#000000", Description: "깊은 블랙"},
		{Name: "아이시 블루", Hex: "#A5F2F3", Description: "차가운 아이시 블루"},
	},
}

// seasonDescriptions summarizes the styling profile of each season.
var seasonDescriptions = map[schema.Season]string{
	schema.SpringSeason: "봄 타입은 밝고 따뜻한 색조가 잘 어울립니다. 피부에 황색 베이스가 있으며, 생기 있고 화사한 컬러가 얼굴을 환하게 밝혀줍니다.",
	schema.SummerSeason: "여름 타입은 부드럽고 시원한 색조가 잘 어울립니다. 피부에 핑크빛 베이스가 있으며, 파스텔 톤과 그레이시한 컬러가 우아함을 더해줍니다.",
	schema.AutumnSeason: "가을 타입은 따뜻하고 깊은 색조가 잘 어울립니다. 피부에 황금빛 베이스가 있으며, 어스 톤과 깊이 있는 컬러가 고급스러움을 연출합니다.",
	schema.WinterSeason: "겨울 타입은 선명하고 차가운 색조가 잘 어울립니다. 피부에 푸른 베이스가 있으며, 대비가 강한 컬러가 세련된 인상을 줍니다.",
}

// defaultPaletteKey is the final resolution fallback. Every resolver path
// ends on a real five-color palette.
const defaultPaletteKey = "summer_cool"

// defaultSubtypeForSeason picks the representative subtype when a caller
// names only a season. Each pairing has a dedicated palette.
var defaultSubtypeForSeason = map[schema.Season]schema.Subtype{
	schema.SpringSeason: schema.WarmSubtype,
	schema.SummerSeason: schema.CoolSubtype,
	schema.AutumnSeason: schema.WarmSubtype,
	schema.WinterSeason: schema.CoolSubtype,
}

func paletteKey(season schema.Season, subtype string) string {
	return string(season) + "_" + subtype
}

// ResolvePalette returns the five-color palette for a season and subtype.
// Combinations without a dedicated palette degrade to the tone-level palette
// for the season, then to the summer cool palette. Resolution is total and
// idempotent: resolving an already-resolved pair returns the same palette.
func ResolvePalette(season schema.Season, subtype schema.Subtype) []schema.PaletteColor {
	if colors, ok := seasonPalettes[paletteKey(season, string(subtype))]; ok {
		return colors
	}
	if colors, ok := seasonPalettes[paletteKey(season, string(schema.DeriveTone(subtype)))]; ok {
		return colors
	}
	return seasonPalettes[defaultPaletteKey]
}

// ResolveTonePalette returns the palette for a season and tone pair, falling
// back to the summer cool palette. Daily healing picks from this palette.
func ResolveTonePalette(season schema.Season, tone schema.Tone) []schema.PaletteColor {
	if colors, ok := seasonPalettes[paletteKey(season, string(tone))]; ok {
		return colors
	}
	return seasonPalettes[defaultPaletteKey]
}

// SeasonDescription returns the styling description for a season, or an
// empty string for an unknown season.
func SeasonDescription(season schema.Season) string {
	return seasonDescriptions[season]
}
