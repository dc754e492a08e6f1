package parse

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type object = map[string]any

// asArray normalizes the schema drift between array and scalar
// fields. A JSON array passes through, a single object or scalar
// becomes a one-element slice, nil stays empty. Object-shaped arrays
// keep their numeric keys in order and drop the "length" count member
// some serializers emit.
func asArray(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case object:
		if _, ok := v["length"]; ok {
			return objectArray(v)
		}
		return []any{v}
	default:
		return []any{v}
	}
}

func objectArray(v object) []any {
	indexes := make([]int, 0, len(v))
	for key := range v {
		if key == "length" {
			continue
		}
		if i, err := strconv.Atoi(key); err == nil {
			indexes = append(indexes, i)
		}
	}
	sort.Ints(indexes)

	items := make([]any, 0, len(indexes))
	for _, i := range indexes {
		items = append(items, v[strconv.Itoa(i)])
	}
	return items
}

func asObject(value any) object {
	obj, _ := value.(object)
	return obj
}

// getString reads a string field, rendering numbers the compact way.
// Missing fields and other types read as "".
func getString(obj object, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return ""
	}
}

// getFloat reads a number field tolerantly: native numbers pass
// through, string-typed numbers are converted when they parse, all
// other shapes report !ok and get skipped by callers.
func getFloat(obj object, key string) (float64, bool) {
	switch v := obj[key].(type) {
	case float64:
		return v, true
	case string:
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func getInt(obj object, key string) (int, bool) {
	f, ok := getFloat(obj, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// stripHTML reduces attribution markup to its text content. The
// vendor embeds anchors and formatting in attribution strings; callers
// want plain text.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
