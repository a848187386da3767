package domain

import (
	"bytes"
	"regexp"

	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"
)

// Document is a loosely typed JSON object returned by alpha vantage. The
// API omits fields freely, so every accessor is optional and key order is
// the order in which the API sent them.
type Document struct {
	raw []byte
}

func NewDocument(raw []byte) Document {
	return Document{raw: bytes.TrimSpace(raw)}
}

func (d Document) Raw() []byte {
	return d.raw
}

func (d Document) result() gjson.Result {
	return gjson.ParseBytes(d.raw)
}

// IsEmpty reports whether the document is falsy: no body, null, false,
// zero, an empty string or an empty object/array.
func (d Document) IsEmpty() bool {
	if len(d.raw) == 0 {
		return true
	}
	r := d.result()
	switch r.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return r.Float() == 0
	case gjson.String:
		return r.Str == ""
	}
	if r.IsObject() || r.IsArray() {
		empty := true
		r.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	}
	return false
}

// ForEach walks top level keys in document order. It is a no-op unless the
// document is an object.
func (d Document) ForEach(fn func(key string, value Document) bool) {
	r := d.result()
	if !r.IsObject() {
		return
	}
	r.ForEach(func(key, value gjson.Result) bool {
		return fn(key.String(), Document{raw: []byte(value.Raw)})
	})
}

// Keys lists the top level keys in document order.
func (d Document) Keys() []string {
	out := []string{}
	d.ForEach(func(key string, _ Document) bool {
		out = append(out, key)
		return true
	})
	return out
}

// Get returns the value stored under key. Keys are matched literally, so
// names like "4. close" or "Time Series (Daily)" need no path escaping.
func (d Document) Get(key string) (Document, bool) {
	var (
		out   Document
		found bool
	)
	d.ForEach(func(k string, value Document) bool {
		if k == key {
			out = value
			found = true
			return false
		}
		return true
	})
	return out, found
}

func (d Document) Has(key string) bool {
	_, found := d.Get(key)
	return found
}

// Field returns a scalar value as a string. Missing keys and JSON null are
// invalid; objects and arrays come back as their raw JSON.
func (d Document) Field(key string) null.String {
	v, found := d.Get(key)
	if !found {
		return null.String{}
	}
	r := v.result()
	switch r.Type {
	case gjson.Null:
		return null.String{}
	case gjson.JSON:
		return null.StringFrom(r.Raw)
	}
	return null.StringFrom(r.String())
}

// Without returns a copy of the object with key removed, keeping the order
// of the remaining keys.
func (d Document) Without(key string) Document {
	r := d.result()
	if !r.IsObject() {
		return d
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	r.ForEach(func(k, value gjson.Result) bool {
		if k.String() == key {
			return true
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(k.Raw)
		buf.WriteByte(':')
		buf.WriteString(value.Raw)
		return true
	})
	buf.WriteByte('}')
	return Document{raw: buf.Bytes()}
}

// Map converts the document for the template layer. Non-objects return nil.
func (d Document) Map() map[string]interface{} {
	out, ok := d.result().Value().(map[string]interface{})
	if !ok {
		return nil
	}
	return out
}

// matches a whole object key, so string values that happen to start with
// "1. " are left alone
var keyOrdinalRegex = regexp.MustCompile(`([{,]\s*)"[0-9]+\. ((?:[^"\\]|\\.)*)"(\s*:)`)

// StripKeyOrdinals removes the "1. " style numbering alpha vantage puts in
// front of its JSON keys.
func StripKeyOrdinals(d Document) Document {
	return Document{raw: keyOrdinalRegex.ReplaceAll(d.raw, []byte(`${1}"${2}"${3}`))}
}
