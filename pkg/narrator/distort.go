// Package narrator selects and mangles description text based on the
// player's sanity tier and the blood moon.
package narrator

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Distorter rewrites narration for the unreliable-narrator sanity tier.
// The substitution rule is a product decision still in flux, so it is
// pluggable: the engine takes any Distorter and the default is the
// deterministic word-swap below.
type Distorter interface {
	Distort(text string) string
}

// wordSwaps maps ordinary household words to what the player sees
// instead once the narrator can no longer be trusted. Deterministic on
// purpose: the same room misdescribes itself the same way every time.
var wordSwaps = map[string]string{
	"door":     "mouth",
	"doors":    "mouths",
	"window":   "eye",
	"windows":  "eyes",
	"wall":     "membrane",
	"walls":    "membranes",
	"floor":    "hide",
	"ceiling":  "palate",
	"stairs":   "teeth",
	"staircase": "jaw",
	"candle":   "finger",
	"candles":  "fingers",
	"lamp":     "heart",
	"mirror":   "pool",
	"painting": "face",
	"paintings": "faces",
	"carpet":   "moss",
	"shadow":   "visitor",
	"shadows":  "visitors",
	"silence":  "hum",
	"dust":     "ash",
	"empty":    "waiting",
	"old":      "patient",
}

// WordSwapDistorter applies the word-swap table with case preservation.
type WordSwapDistorter struct {
	regexes map[string]*regexp.Regexp
}

// NewWordSwapDistorter precompiles one boundary-anchored pattern per
// swapped word.
func NewWordSwapDistorter() *WordSwapDistorter {
	d := &WordSwapDistorter{
		regexes: make(map[string]*regexp.Regexp, len(wordSwaps)),
	}
	for word := range wordSwaps {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		d.regexes[word] = regexp.MustCompile(pattern)
	}
	return d
}

// Distort rewrites the text through the swap table.
func (d *WordSwapDistorter) Distort(text string) string {
	result := text
	for word, replacement := range wordSwaps {
		regex := d.regexes[word]
		result = regex.ReplaceAllStringFunc(result, func(match string) string {
			return preserveCase(match, replacement)
		})
	}
	return result
}

// NoopDistorter leaves the text alone. Useful in tests and as an
// explicit "straight narration" strategy.
type NoopDistorter struct{}

func (NoopDistorter) Distort(text string) string { return text }

// preserveCase applies the case pattern of the original word to the
// replacement.
func preserveCase(original, replacement string) string {
	if len(original) == 0 {
		return replacement
	}

	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	// Mixed case: mirror the original character by character.
	result := make([]rune, 0, len(replacement))
	originalRunes := []rune(original)
	for i, r := range replacement {
		if i < len(originalRunes) && unicode.IsUpper(originalRunes[i]) {
			result = append(result, unicode.ToUpper(r))
		} else {
			result = append(result, unicode.ToLower(r))
		}
	}
	return string(result)
}
