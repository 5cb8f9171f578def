package ai

import (
	"fmt"
	"strings"
	"time"
)

// Bangladesh has no daylight saving, a fixed zone avoids depending on tzdata.
var dhaka = time.FixedZone("BST", 6*60*60)

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// FormatBengaliDate renders t the way a bn-BD locale short date does, e.g. ১৫/১০/২০২৬.
func FormatBengaliDate(t time.Time) string {
	t = t.In(dhaka)
	return bengaliDigits.Replace(fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
}
