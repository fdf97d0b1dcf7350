package content

// The prepared_contents collection is schemaless: documents are written by
// several generations of authoring tools and fields may be missing or
// double-encoded. RawDoc is the untyped form repositories hand to the
// normalizer.
type RawDoc struct {
	ID   string
	Data map[string]interface{}
}

// BaseContent is the common normalized field set shared by every list item.
type BaseContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// AccommodationItem is the typed list item for the 숙소 category.
type AccommodationItem struct {
	BaseContent
	Price    int     `json:"price"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
}

// AttractionItem is the typed list item for the 명소 category.
type AttractionItem struct {
	BaseContent
	Address      string `json:"address"`
	AdmissionFee int    `json:"admissionFee"`
	OpeningHours string `json:"openingHours"`
}

// ContentDetail is a fully normalized document: JSON-safe values only, with
// store-native types already converted and fullContent decoded.
type ContentDetail map[string]interface{}

// Page is one cursor-delimited slice of a filtered, ordered listing.
type Page struct {
	Docs          []ContentDetail `json:"docs"`
	LastVisibleID string          `json:"lastVisibleId"`
	HasNext       bool            `json:"hasNext"`
	Size          int             `json:"size"`
}
