package gstin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/slug"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   gstin.GSTIN
		wantOK bool
	}{
		{name: "canonical slug", input: "abc-co-pvt-ltd-27aabcu9603r1zm", want: sample, wantOK: true},
		{name: "bare identifier", input: "27aabcu9603r1zm", want: sample, wantOK: true},
		{name: "identifier mid string", input: "x-27AABCU9603R1ZM-y", want: sample, wantOK: true},
		{name: "first of two", input: "07aaacb1234caz5-27aabcu9603r1zm", want: "07AAACB1234CAZ5", wantOK: true},
		{name: "no identifier", input: "abc-co-pvt-ltd", wantOK: false},
		{name: "truncated identifier", input: "abc-27aabcu9603r1z", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := gstin.Extract(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRecoversFromBuiltSlug(t *testing.T) {
	t.Parallel()

	ids := []gstin.GSTIN{sample, "07AAACB1234CAZ5", "33ABCDE1234F9Z0", "29AAAAA0000A0ZZ"}
	names := []string{
		"ABC & Co. Pvt. Ltd.",
		"",
		"12 Brothers Trading",
		"Sri Lakshmi Enterprises (Unit 2)",
		"!!!",
		"ZZZZZ 1234",
	}

	for _, id := range ids {
		for _, name := range names {
			seg := slug.Make(name) + "-" + string(id)
			got, ok := gstin.Extract(seg)
			assert.True(t, ok, "segment %q", seg)
			assert.Equal(t, id, got, "segment %q", seg)

			got, ok = gstin.Extract(gstin.SlugFor(name, id))
			assert.True(t, ok)
			assert.Equal(t, id, got)
		}
	}

	t.Run("name containing an identifier yields the first match", func(t *testing.T) {
		t.Parallel()
		got, ok := gstin.Extract(gstin.SlugFor("29AAAAA0000A0ZZ Holdings", sample))
		assert.True(t, ok)
		assert.Equal(t, gstin.GSTIN("29AAAAA0000A0ZZ"), got)
	})
}
