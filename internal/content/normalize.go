package content

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExtractBaseFields pulls the common display fields out of a raw document,
// applying the listing defaults: empty strings for missing text, thumbnail
// as the imageUrl fallback, and the current instant for missing timestamps.
// Default timestamps are a display convenience only; ordering always uses
// the stored value.
func ExtractBaseFields(doc RawDoc) BaseContent {
	data := doc.Data
	img := stringField(data, "imageUrl")
	if img == "" {
		img = stringField(data, "thumbnail")
	}
	return BaseContent{
		ID:          doc.ID,
		Title:       stringField(data, "title"),
		ImageURL:    img,
		Category:    stringField(data, "category"),
		IsPublished: boolField(data, "is_published"),
		CreatedAt:   isoTime(data["createdAt"]),
		UpdatedAt:   isoTime(data["updatedAt"]),
	}
}

// ToDetail converts a raw document into a JSON-safe detail record.
// Store-native values are converted recursively and a string-encoded
// fullContent is decoded so downstream code only ever sees structures.
func ToDetail(doc RawDoc) ContentDetail {
	out := ContentDetail{"id": doc.ID}
	for k, v := range doc.Data {
		out[k] = ConvertValue(v)
	}
	if fc, ok := out["fullContent"]; ok {
		out["fullContent"] = DecodeIfString(fc)
	}
	return out
}

// ConvertValue recursively rewrites store-native types into plain
// JSON-serializable values:
//   - timestamps -> ISO-8601 strings
//   - geo points -> {lat, lng}
//   - document references -> their path string
//   - arrays and maps -> element/key-wise conversion, order and keys preserved
//   - primitives unchanged
func ConvertValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC().Format(time.RFC3339)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DBPointer:
		return t.DB + "/" + t.Pointer.Hex()
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = ConvertValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = ConvertValue(e)
		}
		return out
	case map[string]interface{}:
		if pt, ok := geoPoint(t); ok {
			return pt
		}
		if path, ok := docRef(t); ok {
			return path
		}
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = ConvertValue(e)
		}
		return out
	default:
		return v
	}
}

// geoPoint recognizes a GeoJSON point sub-document and flattens it.
func geoPoint(m map[string]interface{}) (map[string]interface{}, bool) {
	if s, _ := m["type"].(string); s != "Point" {
		return nil, false
	}
	coords, ok := asSlice(m["coordinates"])
	if !ok || len(coords) != 2 {
		return nil, false
	}
	lng, okLng := asFloat(coords[0])
	lat, okLat := asFloat(coords[1])
	if !okLng || !okLat {
		return nil, false
	}
	return map[string]interface{}{"lat": lat, "lng": lng}, true
}

// docRef recognizes a DBRef-shaped sub-document ({$ref, $id}) and returns
// its path string.
func docRef(m map[string]interface{}) (string, bool) {
	ref, okRef := m["$ref"].(string)
	if !okRef || ref == "" {
		return "", false
	}
	switch id := m["$id"].(type) {
	case string:
		return ref + "/" + id, true
	case primitive.ObjectID:
		return ref + "/" + id.Hex(), true
	}
	return "", false
}

// DecodeIfString normalizes a historically double-encoded field: when the
// value is a JSON string it is decoded, and a malformed string degrades to
// an empty object rather than an error.
func DecodeIfString(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return ConvertValue(v)
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		logger.Warnf("string-encoded field is not valid JSON, substituting empty object: %v", err)
		return map[string]interface{}{}
	}
	return decoded
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func boolField(data map[string]interface{}, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// numField coerces a numeric field to float64; missing or non-numeric
// values default to 0.
func numField(data map[string]interface{}, key string) float64 {
	f, _ := asFloat(data[key])
	return f
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case primitive.A:
		return []interface{}(t), true
	case []interface{}:
		return t, true
	}
	return nil, false
}

func isoTime(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case string:
		if t != "" {
			return t
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// ToAccommodation builds the typed 숙소 list item with its field defaults.
func ToAccommodation(doc RawDoc) AccommodationItem {
	return AccommodationItem{
		BaseContent: ExtractBaseFields(doc),
		Price:       int(numField(doc.Data, "price")),
		Location:    stringField(doc.Data, "location"),
		Rating:      numField(doc.Data, "rating"),
	}
}

// ToAttraction builds the typed 명소 list item with its field defaults.
func ToAttraction(doc RawDoc) AttractionItem {
	hours := stringField(doc.Data, "openingHours")
	if hours == "" {
		hours = "09:00-18:00"
	}
	return AttractionItem{
		BaseContent:  ExtractBaseFields(doc),
		Address:      stringField(doc.Data, "address"),
		AdmissionFee: int(numField(doc.Data, "admissionFee")),
		OpeningHours: hours,
	}
}

// stringify renders a scalar for display fields that are stored
// inconsistently as either numbers or strings (admission fees, prices).
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
