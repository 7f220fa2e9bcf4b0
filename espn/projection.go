package espn

import (
	"math"
	"strconv"
)

// Document is a raw upstream JSON object. Operations return either a
// projection of one (a fixed set of documented keys) or, for the
// whole-document operations, the upstream sub-document itself.
type Document = map[string]any

// Coercion describes how a projected value is converted before it is
// written to the output document.
type Coercion int

const (
	// CoerceNone copies the source value verbatim.
	CoerceNone Coercion = iota
	// CoerceInt parses the source as an integer. Upstream encodes several
	// numeric ids as JSON strings.
	CoerceInt
)

// Field is one row of an operation's mapping table: where the value comes
// from, what the output key is called, and how it is coerced.
type Field struct {
	Out    string
	Path   []string
	Coerce Coercion
}

// Mapping is an operation's complete output contract. Adding or renaming an
// output field is a table edit, not new code.
type Mapping []Field

// Project extracts the mapped fields from doc. A missing source path means
// the output key is omitted; it is never an error. Keys outside the mapping
// never appear in the result.
func Project(doc Document, mapping Mapping) Document {
	out := make(Document, len(mapping))
	for _, f := range mapping {
		val, ok := At(doc, f.Path...)
		if !ok {
			continue
		}
		if f.Coerce == CoerceInt {
			val = coerceInt(val)
		}
		out[f.Out] = val
	}
	return out
}

// At walks a path of object keys through doc. The boolean reports whether
// every segment was present.
func At(doc Document, path ...string) (any, bool) {
	var cur any = doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// SubDocument returns the object at path, for operations whose contract is
// an entire upstream sub-document rather than a field table.
func SubDocument(doc Document, path ...string) (Document, bool) {
	val, ok := At(doc, path...)
	if !ok {
		return nil, false
	}
	sub, ok := val.(map[string]any)
	if !ok {
		return nil, false
	}
	return sub, true
}

// coerceInt converts JSON strings and numbers to int. A value that cannot be
// parsed yields NaN rather than failing the whole projection.
func coerceInt(val any) any {
	switch v := val.(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return math.NaN()
		}
		return n
	case float64:
		return int(v)
	case int:
		return v
	default:
		return math.NaN()
	}
}
