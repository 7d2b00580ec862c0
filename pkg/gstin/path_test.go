package gstin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gstcheck/pkg/gstin"
)

func TestSlugFor(t *testing.T) {
	t.Parallel()

	id := gstin.MustParse(sample)
	assert.Equal(t, "abc-co-pvt-ltd-27aabcu9603r1zm", gstin.SlugFor("ABC & Co. Pvt. Ltd.", id))
	assert.Equal(t, "27aabcu9603r1zm", gstin.SlugFor("", id))
	assert.Equal(t, "27aabcu9603r1zm", gstin.SlugFor(" &&& ", id))
}

func TestPath(t *testing.T) {
	t.Parallel()

	id := gstin.MustParse(sample)
	assert.Equal(t, "/gst-return-checker/abc-co-pvt-ltd-27aabcu9603r1zm/", gstin.Path("ABC & Co. Pvt. Ltd.", id))
}

func TestIsCanonical(t *testing.T) {
	t.Parallel()

	id := gstin.MustParse(sample)
	name := "ABC & Co. Pvt. Ltd."

	assert.True(t, gstin.IsCanonical("/gst-return-checker/abc-co-pvt-ltd-27aabcu9603r1zm/", name, id))
	assert.True(t, gstin.IsCanonical("/gst-return-checker/abc-co-pvt-ltd-27aabcu9603r1zm", name, id))
	assert.False(t, gstin.IsCanonical("/gst-return-checker/27aabcu9603r1zm/", name, id))
	assert.False(t, gstin.IsCanonical("/gst-return-checker/abc-co-pvt-ltd-27AABCU9603R1ZM/", name, id))
	assert.False(t, gstin.IsCanonical("", name, id))
}

func TestFromSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		seg    string
		want   gstin.GSTIN
		wantOK bool
	}{
		{name: "canonical segment", seg: "abc-co-pvt-ltd-27aabcu9603r1zm", want: sample, wantOK: true},
		{name: "identifier alone", seg: "27aabcu9603r1zm", want: sample, wantOK: true},
		{name: "name slugs into an identifier", seg: "29aaaaa0000a0zz-holdings-27aabcu9603r1zm", want: sample, wantOK: true},
		{name: "identifier not last", seg: "27aabcu9603r1zm-abc-traders", want: sample, wantOK: true},
		{name: "no identifier", seg: "some-business", wantOK: false},
		{name: "short segment", seg: "abc", wantOK: false},
		{name: "multibyte tail", seg: "27aabcu9603r1zm-ñ", want: sample, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := gstin.FromSegment(tt.seg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromSegmentRecoversFromSlugFor(t *testing.T) {
	t.Parallel()

	id := gstin.MustParse(sample)
	for _, name := range []string{"ABC & Co. Pvt. Ltd.", "", "29AAAAA0000A0ZZ Holdings", "Unit 07AAACB1234CAZ5"} {
		got, ok := gstin.FromSegment(gstin.SlugFor(name, id))
		assert.True(t, ok, name)
		assert.Equal(t, id, got, name)
	}
}
