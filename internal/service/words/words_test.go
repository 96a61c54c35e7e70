package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPigLatin(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "first", expected: "irst-fay"},
		{input: "apple", expected: "apple-hay"},
		{input: "Apple", expected: "apple-hay"},
		{input: " Hello ", expected: "ello-hay"},
		{input: "u", expected: "u-hay"},
		{input: "x", expected: "-xay"},
		{input: "ñandu", expected: "andu-ñay"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PigLatin(tt.input))
		})
	}
}

func TestPigLatinText(t *testing.T) {
	assert.Equal(t, "irst-fay apple-hay", PigLatinText("  first   Apple "))
	assert.Equal(t, "", PigLatinText(""))
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 112: "112th"}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestVerse(t *testing.T) {
	assert.Equal(t, []string{
		"On the 1st day of Christmas, my true love gave to me...",
		"a partridge in a pear tree.",
	}, Verse(1))

	assert.Equal(t, []string{
		"On the 3rd day of Christmas, my true love gave to me...",
		"Three French hens,",
		"Two turtle doves,",
		"And a partridge in a pear tree.",
	}, Verse(3))

	assert.Nil(t, Verse(0))
	assert.Nil(t, Verse(13))
}

func TestCarol(t *testing.T) {
	c := Carol()
	assert.Equal(t, 12, strings.Count(c, "day of Christmas"))
	assert.True(t, strings.HasPrefix(c, "On the 1st day"))
	assert.Contains(t, c, "Twelve drummers drumming,")
}
