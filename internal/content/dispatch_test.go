package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lodgingPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "설악 리조트",
		"address":     "강원 속초시 설악산로 1",
		"priceRange":  "15만원~25만원",
		"rating":      4.2,
		"amenities":   []interface{}{"수영장", "조식", "주차"},
		"description": "설악산 초입의 가족 리조트",
	}
}

func TestDispatchLodging(t *testing.T) {
	s := Dispatch(LabelLodging, lodgingPayload())
	require.Equal(t, "lodging", s.Kind)
	require.Equal(t, "설악 리조트", s.Lodging.Name)
	require.Equal(t, []string{"수영장", "조식", "주차"}, s.Lodging.Amenities)
}

// A 숙소 document with an empty fullContent renders nothing, never errors.
func TestDispatchLodgingEmptyPayload(t *testing.T) {
	s := Dispatch(LabelLodging, map[string]interface{}{})
	require.Equal(t, "none", s.Kind)
	require.Nil(t, s.Lodging)
}

func TestDispatchLodgingMissingRequiredField(t *testing.T) {
	p := lodgingPayload()
	delete(p, "amenities")
	s := Dispatch(LabelLodging, p)
	require.Equal(t, "none", s.Kind)
}

func TestDispatchAttraction(t *testing.T) {
	s := Dispatch(LabelAttraction, map[string]interface{}{
		"name":           "해운대 해수욕장",
		"address":        "부산 해운대구",
		"operatingHours": "상시 개방",
		"admissionFee":   float64(0),
		"photoSpots":     []interface{}{"동백섬", "미포철길"},
		"description":    "부산의 대표 해변",
	})
	require.Equal(t, "attraction", s.Kind)
	require.Equal(t, "0", s.Attraction.AdmissionFee)
	require.Equal(t, []string{"동백섬", "미포철길"}, s.Attraction.PhotoSpots)
}

func TestDispatchRestaurantItems(t *testing.T) {
	s := Dispatch(LabelRestaurant, map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"type": "food", "name": "물회", "description": "여름 별미"},
			map[string]interface{}{"type": "tip", "content": "웨이팅은 오픈 직후가 짧아요"},
		},
	})
	require.Equal(t, "restaurant", s.Kind)
	require.Len(t, s.Entries, 2)
	require.Equal(t, "물회", s.Entries[0].Name)
	require.Equal(t, "tip", s.Entries[1].Type)
}

func TestDispatchRestaurantEmptyItems(t *testing.T) {
	s := Dispatch(LabelRestaurant, map[string]interface{}{"items": []interface{}{}})
	require.Equal(t, "none", s.Kind)
}

func TestDispatchShoppingItemPrice(t *testing.T) {
	s := Dispatch(LabelShopping, map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"type": "product", "name": "오미자청", "price": float64(18000)},
		},
	})
	require.Equal(t, "shopping", s.Kind)
	require.Equal(t, "18000", s.Entries[0].Price)
}

func TestDispatchTravelGroupsDaysAscending(t *testing.T) {
	s := Dispatch(LabelTravelCourse, map[string]interface{}{
		"itinerary": []interface{}{
			map[string]interface{}{"day": float64(2), "place": "성산일출봉", "activity": "일출 감상"},
			map[string]interface{}{"day": float64(1), "place": "협재해수욕장", "activity": "물놀이"},
			map[string]interface{}{"day": float64(2), "place": "우도", "activity": "자전거"},
		},
		"tips": []interface{}{"렌터카 필수", "우비 챙기기"},
	})
	require.Equal(t, "travel", s.Kind)
	require.Len(t, s.Travel.Days, 2)
	require.Equal(t, 1, s.Travel.Days[0].Day)
	require.Equal(t, 2, s.Travel.Days[1].Day)
	require.Len(t, s.Travel.Days[1].Stops, 2)
	require.Equal(t, []string{"렌터카 필수", "우비 챙기기"}, s.Travel.Tips)
}

// itinerary and tips may be JSON-encoded strings; each parses independently
// and a malformed one degrades to empty.
func TestDispatchTravelStringEncodedFields(t *testing.T) {
	s := Dispatch(LabelTravelCourse, map[string]interface{}{
		"itinerary": `[{"day":1,"place":"남산","activity":"야경"}]`,
		"tips":      `["편한 신발"]`,
	})
	require.Equal(t, "travel", s.Kind)
	require.Equal(t, "남산", s.Travel.Days[0].Stops[0].Place)
	require.Equal(t, []string{"편한 신발"}, s.Travel.Tips)

	s = Dispatch(LabelTravelCourse, map[string]interface{}{
		"itinerary": `[{"day":`,
		"tips":      `["아직 유효"]`,
	})
	require.Equal(t, "travel", s.Kind)
	require.Empty(t, s.Travel.Days)
	require.Equal(t, []string{"아직 유효"}, s.Travel.Tips)
}

func TestDispatchTravelBothAbsent(t *testing.T) {
	s := Dispatch(LabelTravelCourse, map[string]interface{}{"note": "준비중"})
	require.Equal(t, "none", s.Kind)
}

// Unrecognized categories keep the raw structure for diagnostics instead of
// dropping data.
func TestDispatchUnrecognizedCategory(t *testing.T) {
	payload := map[string]interface{}{"anything": "goes"}
	s := Dispatch("기타", payload)
	require.Equal(t, "other", s.Kind)
	require.Equal(t, payload, s.Raw)
}

// Non-object payloads under an unrecognized category are wrapped, not
// dropped: scalars, arrays and string-encoded arrays all come back as
// Kind "other".
func TestDispatchUnrecognizedNonObjectPayloads(t *testing.T) {
	s := Dispatch("기타", []interface{}{"item-a", "item-b"})
	require.Equal(t, "other", s.Kind)
	require.Equal(t, map[string]interface{}{"value": []interface{}{"item-a", "item-b"}}, s.Raw)

	s = Dispatch("기타", `["item-a","item-b"]`)
	require.Equal(t, "other", s.Kind)
	require.Equal(t, map[string]interface{}{"value": []interface{}{"item-a", "item-b"}}, s.Raw)

	s = Dispatch("기타", 42)
	require.Equal(t, "other", s.Kind)
	require.Equal(t, map[string]interface{}{"value": 42}, s.Raw)

	// absent content still renders nothing
	s = Dispatch("기타", nil)
	require.Equal(t, "none", s.Kind)
}

// Dispatch is total: any label with any payload shape returns a renderable
// section and never panics.
func TestDispatchTotality(t *testing.T) {
	labels := []string{LabelLodging, LabelAttraction, LabelRestaurant, LabelShopping, LabelTravelCourse, "기타", ""}
	payloads := []interface{}{
		nil,
		map[string]interface{}{},
		"not json at all",
		`{"valid":"json"}`,
		[]interface{}{"array", "payload"},
		42,
	}
	for _, label := range labels {
		for _, payload := range payloads {
			s := Dispatch(label, payload)
			require.NotEmpty(t, s.Kind)
		}
	}
}

func TestParseCategoryRoundTrip(t *testing.T) {
	require.Equal(t, CategoryLodging, ParseCategory("숙소"))
	require.Equal(t, CategoryTravelCourse, ParseCategory("여행"))
	require.Equal(t, CategoryOther, ParseCategory("accommodation"))
	require.Equal(t, "lodging", CategoryLodging.String())
	require.Equal(t, "other", CategoryOther.String())
}
