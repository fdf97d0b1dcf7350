package content

import (
	"sort"

	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
)

// Category is the closed set of content shapes. Stored documents carry the
// Korean labels; anything else falls into CategoryOther.
type Category int

const (
	CategoryLodging Category = iota
	CategoryAttraction
	CategoryRestaurant
	CategoryShopping
	CategoryTravelCourse
	CategoryOther
)

const (
	LabelLodging      = "숙소"
	LabelAttraction   = "명소"
	LabelRestaurant   = "맛집"
	LabelShopping     = "쇼핑"
	LabelTravelCourse = "여행"
)

// ParseCategory maps a stored label to its variant. Matching is exact; an
// unrecognized label is not an error, it selects the fallback shape.
func ParseCategory(label string) Category {
	switch label {
	case LabelLodging:
		return CategoryLodging
	case LabelAttraction:
		return CategoryAttraction
	case LabelRestaurant:
		return CategoryRestaurant
	case LabelShopping:
		return CategoryShopping
	case LabelTravelCourse:
		return CategoryTravelCourse
	}
	return CategoryOther
}

func (c Category) String() string {
	switch c {
	case CategoryLodging:
		return "lodging"
	case CategoryAttraction:
		return "attraction"
	case CategoryRestaurant:
		return "restaurant"
	case CategoryShopping:
		return "shopping"
	case CategoryTravelCourse:
		return "travel-course"
	}
	return "other"
}

// LodgingContent is the expected fullContent shape for 숙소 documents.
type LodgingContent struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// AttractionContent is the expected fullContent shape for 명소 documents.
type AttractionContent struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	OperatingHours string   `json:"operatingHours"`
	AdmissionFee   string   `json:"admissionFee"`
	PhotoSpots     []string `json:"photoSpots"`
	Description    string   `json:"description"`
}

// ListEntry is a typed item in 맛집 and 쇼핑 payloads: either a named entry
// (food/product) or a free-form tip.
type ListEntry struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Price       string `json:"price,omitempty"`
}

// ItineraryStop is one scheduled entry of a 여행 course.
type ItineraryStop struct {
	Day      int    `json:"day"`
	Place    string `json:"place"`
	Activity string `json:"activity"`
}

// TravelDay groups a course's stops for one day.
type TravelDay struct {
	Day   int             `json:"day"`
	Stops []ItineraryStop `json:"stops"`
}

// TravelContent is the rendered 여행 payload: days ascending, tips flat.
type TravelContent struct {
	Days []TravelDay `json:"days"`
	Tips []string    `json:"tips"`
}

// Section is the dispatch result: exactly one payload field matching Kind is
// set. Kind "none" means nothing renders for this document; Kind "other"
// carries the raw structure so unrecognized data is never silently dropped.
type Section struct {
	Kind       string                 `json:"kind"`
	Lodging    *LodgingContent        `json:"lodging,omitempty"`
	Attraction *AttractionContent     `json:"attraction,omitempty"`
	Entries    []ListEntry            `json:"entries,omitempty"`
	Travel     *TravelContent         `json:"travel,omitempty"`
	Raw        map[string]interface{} `json:"raw,omitempty"`
}

// Dispatch selects and populates the content shape for a document's
// declared category. It is total: any label and any fullContent shape
// (well-formed, malformed or absent) yields a renderable Section.
func Dispatch(label string, fullContent interface{}) Section {
	decoded := DecodeIfString(fullContent)
	payload, _ := decoded.(map[string]interface{})

	switch ParseCategory(label) {
	case CategoryLodging:
		return lodgingSection(payload)
	case CategoryAttraction:
		return attractionSection(payload)
	case CategoryRestaurant:
		return entriesSection("restaurant", payload)
	case CategoryShopping:
		return entriesSection("shopping", payload)
	case CategoryTravelCourse:
		return travelSection(payload)
	}

	// unrecognized category: surface whatever is stored, object or not
	switch {
	case decoded == nil:
		return Section{Kind: "none"}
	case payload != nil:
		return Section{Kind: "other", Raw: payload}
	default:
		return Section{Kind: "other", Raw: map[string]interface{}{"value": decoded}}
	}
}

func lodgingSection(payload map[string]interface{}) Section {
	if payload == nil {
		return Section{Kind: "none"}
	}
	amenities, okAmenities := stringSlice(payload["amenities"])
	rating, okRating := asFloat(payload["rating"])
	lc := &LodgingContent{
		Name:        stringField(payload, "name"),
		Address:     stringField(payload, "address"),
		PriceRange:  stringField(payload, "priceRange"),
		Rating:      rating,
		Amenities:   amenities,
		Description: stringField(payload, "description"),
	}
	// every field is required; a category/shape mismatch renders nothing
	if lc.Name == "" || lc.Address == "" || lc.PriceRange == "" || !okRating || !okAmenities || lc.Description == "" {
		return Section{Kind: "none"}
	}
	return Section{Kind: "lodging", Lodging: lc}
}

func attractionSection(payload map[string]interface{}) Section {
	if payload == nil {
		return Section{Kind: "none"}
	}
	spots, okSpots := stringSlice(payload["photoSpots"])
	ac := &AttractionContent{
		Name:           stringField(payload, "name"),
		Address:        stringField(payload, "address"),
		OperatingHours: stringField(payload, "operatingHours"),
		AdmissionFee:   stringify(payload["admissionFee"]),
		PhotoSpots:     spots,
		Description:    stringField(payload, "description"),
	}
	if ac.Name == "" || ac.Address == "" || ac.OperatingHours == "" || ac.AdmissionFee == "" || !okSpots || ac.Description == "" {
		return Section{Kind: "none"}
	}
	return Section{Kind: "attraction", Attraction: ac}
}

func entriesSection(kind string, payload map[string]interface{}) Section {
	if payload == nil {
		return Section{Kind: "none"}
	}
	items, ok := asSlice(payload["items"])
	if !ok || len(items) == 0 {
		return Section{Kind: "none"}
	}
	entries := make([]ListEntry, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		entries = append(entries, ListEntry{
			Type:        stringField(m, "type"),
			Name:        stringField(m, "name"),
			Description: stringField(m, "description"),
			Content:     stringField(m, "content"),
			Price:       stringify(m["price"]),
		})
	}
	if len(entries) == 0 {
		return Section{Kind: "none"}
	}
	return Section{Kind: kind, Entries: entries}
}

func travelSection(payload map[string]interface{}) Section {
	if payload == nil {
		return Section{Kind: "none"}
	}
	stops := itineraryStops(payload["itinerary"])
	tips := travelTips(payload["tips"])
	if len(stops) == 0 && len(tips) == 0 {
		return Section{Kind: "none"}
	}
	return Section{Kind: "travel", Travel: &TravelContent{Days: groupByDay(stops), Tips: tips}}
}

// itineraryStops tolerates the itinerary being a JSON-encoded string; a
// parse failure substitutes an empty sequence.
func itineraryStops(v interface{}) []ItineraryStop {
	decoded := DecodeIfString(v)
	items, ok := asSlice(decoded)
	if !ok {
		if v != nil {
			logger.Warnf("travel itinerary has unexpected shape %T, rendering nothing", v)
		}
		return nil
	}
	stops := make([]ItineraryStop, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		day, _ := asFloat(m["day"])
		stops = append(stops, ItineraryStop{
			Day:      int(day),
			Place:    stringField(m, "place"),
			Activity: stringField(m, "activity"),
		})
	}
	return stops
}

func travelTips(v interface{}) []string {
	decoded := DecodeIfString(v)
	tips, ok := stringSlice(decoded)
	if !ok {
		if v != nil {
			logger.Warnf("travel tips have unexpected shape %T, rendering nothing", v)
		}
		return nil
	}
	return tips
}

// groupByDay orders stops per day, ascending by day number. The relative
// order of stops within a day is preserved.
func groupByDay(stops []ItineraryStop) []TravelDay {
	if len(stops) == 0 {
		return nil
	}
	byDay := map[int][]ItineraryStop{}
	days := []int{}
	for _, s := range stops {
		if _, seen := byDay[s.Day]; !seen {
			days = append(days, s.Day)
		}
		byDay[s.Day] = append(byDay[s.Day], s)
	}
	sort.Ints(days)
	out := make([]TravelDay, 0, len(days))
	for _, d := range days {
		out = append(out, TravelDay{Day: d, Stops: byDay[d]})
	}
	return out
}

func stringSlice(v interface{}) ([]string, bool) {
	items, ok := asSlice(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
