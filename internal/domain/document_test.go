package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_IsEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "{}", "[]", `""`, "false", "0"} {
		require.True(t, NewDocument([]byte(raw)).IsEmpty(), raw)
	}
	for _, raw := range []string{`{"Symbol": "IBM"}`, "[1]", `"x"`, "true", "1"} {
		require.False(t, NewDocument([]byte(raw)).IsEmpty(), raw)
	}
}

func TestDocument_Field(t *testing.T) {
	doc := NewDocument([]byte(`{"Symbol": "IBM", "PERatio": 21.5, "Sector": null, "Nested": {"a": 1}}`))

	require.Equal(t, "IBM", doc.Field("Symbol").String)
	require.True(t, doc.Field("Symbol").Valid)
	require.Equal(t, "21.5", doc.Field("PERatio").String)
	require.False(t, doc.Field("Sector").Valid)
	require.False(t, doc.Field("Missing").Valid)
	require.Equal(t, `{"a": 1}`, doc.Field("Nested").String)
}

func TestDocument_Get(t *testing.T) {
	t.Run("keys with dots and parens", func(t *testing.T) {
		doc := NewDocument([]byte(`{"Time Series (Daily)": {"4. close": "1.5"}}`))
		series, found := doc.Get("Time Series (Daily)")
		require.True(t, found)
		require.Equal(t, "1.5", series.Field("4. close").String)
	})
	t.Run("not an object", func(t *testing.T) {
		_, found := NewDocument([]byte(`[1, 2]`)).Get("0")
		require.False(t, found)
	})
}

func TestDocument_Without(t *testing.T) {
	doc := NewDocument([]byte(`{"Meta Data": {"x": 1}, "b": 2, "a": [3]}`))
	out := doc.Without("Meta Data")

	require.Equal(t, `{"b":2,"a":[3]}`, string(out.Raw()))
	require.Equal(t, []string{"b", "a"}, out.Keys())
	require.False(t, out.Has("Meta Data"))
	// original untouched
	require.True(t, doc.Has("Meta Data"))
}

func TestDocument_Map(t *testing.T) {
	doc := NewDocument([]byte(`{"Symbol": "IBM", "Beta": "0.7"}`))
	require.Equal(t, map[string]interface{}{"Symbol": "IBM", "Beta": "0.7"}, doc.Map())
	require.Nil(t, NewDocument([]byte(`"IBM"`)).Map())
}

func TestStripKeyOrdinals(t *testing.T) {
	t.Run("one digit", func(t *testing.T) {
		out := StripKeyOrdinals(NewDocument([]byte(`{"1. hi": "hello"}`)))
		require.Equal(t, `{"hi": "hello"}`, string(out.Raw()))
	})
	t.Run("two digits", func(t *testing.T) {
		out := StripKeyOrdinals(NewDocument([]byte(`{"10. hi": "hello"}`)))
		require.Equal(t, `{"hi": "hello"}`, string(out.Raw()))
	})
	t.Run("values are left alone", func(t *testing.T) {
		out := StripKeyOrdinals(NewDocument([]byte(`{"Meta Data": {"1. Information": "1. Daily", "2. Symbol": "IBM"}}`)))
		require.Equal(t, `{"Meta Data": {"Information": "1. Daily", "Symbol": "IBM"}}`, string(out.Raw()))

		meta, ok := out.Get("Meta Data")
		require.True(t, ok)
		require.Equal(t, "1. Daily", meta.Field("Information").String)
		require.Equal(t, []string{"Information", "Symbol"}, meta.Keys())
	})
	t.Run("nested keys", func(t *testing.T) {
		out := StripKeyOrdinals(NewDocument([]byte(`{"2021-01-01": {"1. open":"1.0","4. close":"2.0"}}`)))
		require.Equal(t, `{"2021-01-01": {"open":"1.0","close":"2.0"}}`, string(out.Raw()))
	})
}
