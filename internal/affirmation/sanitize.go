package affirmation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the shortest sanitized entry kept, in characters.
const MinLength = 11

const (
	quoteChars = "\"'“”‘’«»"
	// edgeChars may never start or end an entry.
	edgeChars = quoteChars + "-0123456789. \t\r\n"
)

var quoteRemover = strings.NewReplacer(
	`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "", "«", "", "»", "",
)

// SplitResponse cuts a raw generator response into candidate entries.
// When the delimiter is missing but the text spans several lines, each
// line is a candidate.
func SplitResponse(raw string) []string {
	pieces := strings.Split(raw, Delimiter)
	if len(pieces) <= 1 && strings.Contains(raw, "\n") {
		pieces = strings.Split(raw, "\n")
	}
	return pieces
}

// Sanitize cleans one candidate entry. It reports false when the entry is
// too short to keep.
func Sanitize(candidate string) (string, bool) {
	text := strings.Trim(strings.TrimSpace(candidate), edgeChars)
	text = quoteRemover.Replace(text)

	words := strings.Fields(text)
	if len(words) > 1 && isSingleLetter(words[len(words)-1]) {
		// Models sometimes cut the final word after its first letter.
		words = words[:len(words)-1]
	}
	text = strings.Join(words, " ")

	if utf8.RuneCountInString(text) < MinLength {
		return "", false
	}

	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") &&
		!strings.HasSuffix(text, "?") && !strings.HasSuffix(text, ",") {
		text += "."
	}
	return text, true
}

// SanitizeAll splits raw and returns at most limit sanitized entries, in order.
func SanitizeAll(raw string, limit int) []string {
	out := make([]string, 0, limit)
	for _, piece := range SplitResponse(raw) {
		if len(out) == limit {
			break
		}
		if text, ok := Sanitize(piece); ok {
			out = append(out, text)
		}
	}
	return out
}

func isSingleLetter(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return size == len(word) && unicode.IsLetter(r)
}
