package core

import (
	"strings"

	"github.com/embeau/tonelab/schema"
)

// Curated recommendation tables organized by season. Every season carries
// three fashion items, three foods and two activities.
var fashionItems = map[schema.Season][]schema.RecommendationItem{
	schema.SpringSeason: {
		{ID: "f1", Type: "fashion", Title: "코랄 블라우스", Description: "화사한 봄을 위한 코랄 컬러 블라우스", Color: "#FF7F50"},
		{ID: "f2", Type: "fashion", Title: "피치 스카프", Description: "부드러운 피치 톤 실크 스카프", Color: "#FFDAB9"},
		{ID: "f3", Type: "fashion", Title: "아이보리 니트", Description: "따뜻한 아이보리 캐시미어 니트", Color: "#FFFFF0"},
	},
	schema.SummerSeason: {
		{ID: "f4", Type: "fashion", Title: "라벤더 원피스", Description: "우아한 라벤더 컬러 린넨 원피스", Color: "#E6E6FA"},
		{ID: "f5", Type: "fashion", Title: "스카이 블루 셔츠", Description: "시원한 스카이 블루 면 셔츠", Color: "#87CEEB"},
		{ID: "f6", Type: "fashion", Title: "소프트 핑크 카디건", Description: "부드러운 핑크 톤 가디건", Color: "#FFB6C1"},
	},
	schema.AutumnSeason: {
		{ID: "f7", Type: "fashion", Title: "테라코타 재킷", Description: "따뜻한 테라코타 울 재킷", Color: "#E2725B"},
		{ID: "f8", Type: "fashion", Title: "머스타드 스웨터", Description: "깊은 머스타드 컬러 니트", Color: "#FFDB58"},
		{ID: "f9", Type: "fashion", Title: "올리브 코트", Description: "클래식한 올리브 그린 코트", Color: "#808000"},
	},
	schema.WinterSeason: {
		{ID: "f10", Type: "fashion", Title: "로얄 블루 드레스", Description: "선명한 로얄 블루 이브닝 드레스", Color: "#4169E1"},
		{ID: "f11", Type: "fashion", Title: "퓨어 화이트 셔츠", Description: "깔끔한 화이트 포플린 셔츠", Color: "#FFFFFF"},
		{ID: "f12", Type: "fashion", Title: "블랙 테일러드 재킷", Description: "세련된 블랙 테일러드 재킷", Color: "#000000"},
	},
}

var foodItems = map[schema.Season][]schema.RecommendationItem{
	schema.SpringSeason: {
		{ID: "fd1", Type: "food", Title: "딸기 요거트 볼", Description: "신선한 딸기와 요거트로 만든 건강 볼", Color: "#FF6B6B"},
		{ID: "fd2", Type: "food", Title: "연어 샐러드", Description: "오메가3 풍부한 연어 아보카도 샐러드", Color: "#FA8072"},
		{ID: "fd3", Type: "food", Title: "망고 스무디", Description: "비타민 가득 망고 스무디", Color: "#FFD700"},
	},
	schema.SummerSeason: {
		{ID: "fd4", Type: "food", Title: "블루베리 스무디", Description: "항산화 성분 가득 블루베리 스무디", Color: "#4169E1"},
		{ID: "fd5", Type: "food", Title: "수박 주스", Description: "시원한 수박 주스", Color: "#FF6B6B"},
		{ID: "fd6", Type: "food", Title: "민트 레모네이드", Description: "청량한 민트 레모네이드", Color: "#98FB98"},
	},
	schema.AutumnSeason: {
		{ID: "fd7", Type: "food", Title: "단호박 수프", Description: "달콤한 단호박 크림 수프", Color: "#FF8C00"},
		{ID: "fd8", Type: "food", Title: "고구마 라떼", Description: "따뜻한 고구마 라떼", Color: "#D2691E"},
		{ID: "fd9", Type: "food", Title: "버섯 리조또", Description: "깊은 풍미의 버섯 리조또", Color: "#8B4513"},
	},
	schema.WinterSeason: {
		{ID: "fd10", Type: "food", Title: "석류 주스", Description: "진한 석류 원액 주스", Color: "#DC143C"},
		{ID: "fd11", Type: "food", Title: "검은콩 죽", Description: "영양 가득 검은콩 죽", Color: "#2F4F4F"},
		{ID: "fd12", Type: "food", Title: "핫초코", Description: "진한 다크 핫초콜릿", Color: "#8B4513"},
	},
}

var activityItems = map[schema.Season][]schema.RecommendationItem{
	schema.SpringSeason: {
		{ID: "a1", Type: "activity", Title: "벚꽃 산책", Description: "봄꽃 가득한 공원에서 가벼운 산책", Color: "#FFB6C1"},
		{ID: "a2", Type: "activity", Title: "꽃꽂이 클래스", Description: "봄 꽃으로 하는 플라워 아레인지먼트", Color: "#98FB98"},
	},
	schema.SummerSeason: {
		{ID: "a3", Type: "activity", Title: "수영", Description: "시원한 물에서 즐기는 수영", Color: "#87CEEB"},
		{ID: "a4", Type: "activity", Title: "요가 명상", Description: "마음을 차분하게 하는 요가 명상", Color: "#E6E6FA"},
	},
	schema.AutumnSeason: {
		{ID: "a5", Type: "activity", Title: "단풍 트레킹", Description: "가을 단풍을 즐기는 산행", Color: "#FF8C00"},
		{ID: "a6", Type: "activity", Title: "도자기 만들기", Description: "마음을 담은 도자기 공예", Color: "#D2691E"},
	},
	schema.WinterSeason: {
		{ID: "a7", Type: "activity", Title: "독서", Description: "따뜻한 실내에서 즐기는 독서", Color: "#8B4513"},
		{ID: "a8", Type: "activity", Title: "미술관 방문", Description: "예술 작품 감상하기", Color: "#4169E1"},
	},
}

// healingColorItems maps a healing color hex to targeted fashion and food
// picks. Colors without an entry fall back to seasonal picks.
var healingColorItems = map[string]struct {
	Fashion []schema.RecommendationItem
	Food    []schema.RecommendationItem
}{
	"#E6E6FA": {
		Fashion: []schema.RecommendationItem{{ID: "hf1", Type: "fashion", Title: "라벤더 캐시미어 스웨터", Description: "부드러운 라벤더 톤으로 마음을 진정시켜주는 니트", Color: "#E6E6FA"}},
		Food:    []schema.RecommendationItem{{ID: "hfd1", Type: "food", Title: "라벤더 허브티", Description: "마음을 진정시키는 라벤더 허브티", Color: "#E6E6FA"}},
	},
	"#87CEEB": {
		Fashion: []schema.RecommendationItem{{ID: "hf2", Type: "fashion", Title: "스카이 블루 린넨 셔츠", Description: "시원하고 청량한 느낌의 셔츠", Color: "#87CEEB"}},
		Food:    []schema.RecommendationItem{{ID: "hfd2", Type: "food", Title: "블루베리 요거트", Description: "상큼하고 건강한 블루베리 요거트", Color: "#87CEEB"}},
	},
	"#98FB98": {
		Fashion: []schema.RecommendationItem{{ID: "hf3", Type: "fashion", Title: "민트 그린 카디건", Description: "상쾌한 느낌의 민트 카디건", Color: "#98FB98"}},
		Food:    []schema.RecommendationItem{{ID: "hfd3", Type: "food", Title: "민트 모히또", Description: "청량감 가득한 민트 음료", Color: "#98FB98"}},
	},
}

// defaultPrimaryColor anchors recommendations for users without a color
// profile.
var defaultPrimaryColor = schema.PaletteColor{Name: "라벤더", Hex: "#E6E6FA", Description: "차분한 라벤더"}

const genericColorName = "힐링 컬러"

func seasonOrDefault(obs *schema.ColorObservation) schema.Season {
	if obs != nil {
		return obs.Season
	}
	return schema.SummerSeason
}

func itemsForSeason(table map[schema.Season][]schema.RecommendationItem, season schema.Season) []schema.RecommendationItem {
	if items, ok := table[season]; ok {
		return items
	}
	return table[schema.SummerSeason]
}

// BuildRecommendations assembles seasonal fashion, food and activity picks
// for a user. The observation may be nil, in which case the summer tables
// and the default primary color are used.
func BuildRecommendations(obs *schema.ColorObservation) schema.RecommendationSet {
	season := seasonOrDefault(obs)

	primary := defaultPrimaryColor
	if obs != nil && len(obs.Palette) > 0 {
		primary = obs.Palette[0]
	}

	return schema.RecommendationSet{
		Color:      primary,
		Items:      itemsForSeason(fashionItems, season),
		Foods:      itemsForSeason(foodItems, season),
		Activities: itemsForSeason(activityItems, season),
	}
}

// BuildRecommendationsByColor assembles picks targeted at a single healing
// color. Known healing colors return their dedicated items and take their
// display name from the first item title; anything else degrades to the
// first two seasonal fashion and food picks under a generic name.
// Activities are never included in by-color results.
func BuildRecommendationsByColor(obs *schema.ColorObservation, colorHex string) schema.RecommendationSet {
	hex := schema.NormalizeHex(colorHex)

	name := genericColorName
	var fashion, food []schema.RecommendationItem
	if entry, ok := healingColorItems[hex]; ok {
		fashion = entry.Fashion
		food = entry.Food
		if len(entry.Fashion) > 0 {
			if fields := strings.Fields(entry.Fashion[0].Title); len(fields) > 0 {
				name = fields[0]
			}
		}
	} else {
		season := seasonOrDefault(obs)
		fashion = firstN(fashionItems[season], 2)
		food = firstN(foodItems[season], 2)
	}

	return schema.RecommendationSet{
		Color:      schema.PaletteColor{Name: name, Hex: hex},
		Items:      fashion,
		Foods:      food,
		Activities: []schema.RecommendationItem{},
	}
}

func firstN(items []schema.RecommendationItem, n int) []schema.RecommendationItem {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
