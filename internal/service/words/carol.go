package words

import (
	"fmt"
	"strings"
)

var gifts = [12]string{
	"partridge in a pear tree",
	"turtle doves",
	"French hens",
	"calling birds",
	"golden rings",
	"geese a-laying",
	"swans a-swimming",
	"maids a-milking",
	"ladies dancing",
	"lords a-leaping",
	"pipers piping",
	"drummers drumming",
}

var counts = [12]string{"a", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve"}

// Ordinal renders n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Verse returns the lines of verse day, 1 through 12, counting the gifts down.
func Verse(day int) []string {
	if day < 1 || day > len(gifts) {
		return nil
	}

	lines := []string{fmt.Sprintf("On the %s day of Christmas, my true love gave to me...", Ordinal(day))}
	for d := day; d >= 1; d-- {
		prefix, suffix := "", ","
		if d == 1 {
			suffix = "."
			if day != 1 {
				prefix = "And "
			}
		}
		lines = append(lines, fmt.Sprintf("%s%s %s%s", prefix, counts[d-1], gifts[d-1], suffix))
	}
	return lines
}

// Carol is the whole song, verses separated by a blank line.
func Carol() string {
	var sb strings.Builder
	for day := 1; day <= len(gifts); day++ {
		sb.WriteString(strings.Join(Verse(day), "\n"))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
