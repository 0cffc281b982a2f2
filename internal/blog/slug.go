package blog

import "strings"

// translit maps a fixed set of diacritics and ligatures to their ASCII
// spellings. This is a finite substitution table, not general Unicode
// folding; runes outside the table pass through and get collapsed into
// hyphens by Slugify when they are not alphanumeric.
var translit = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
	'à': "a",
	'á': "a",
	'â': "a",
	'è': "e",
	'é': "e",
	'ê': "e",
	'ë': "e",
	'ì': "i",
	'í': "i",
	'î': "i",
	'ï': "i",
	'ò': "o",
	'ó': "o",
	'ô': "o",
	'ù': "u",
	'ú': "u",
	'û': "u",
	'ñ': "n",
	'ç': "c",
	'æ': "ae",
	'ø': "oe",
	'å': "aa",
	'œ': "oe",
}

// Slugify turns a title into a URL-safe identifier: lowercase, transliterate
// via the fixed table, collapse every run of non [a-z0-9] into one hyphen and
// trim leading/trailing hyphens. It is a pure function and may return the
// empty string for titles without any alphanumeric content.
func Slugify(title string) string {
	var ascii strings.Builder
	for _, r := range strings.ToLower(title) {
		if rep, ok := translit[r]; ok {
			ascii.WriteString(rep)
			continue
		}
		ascii.WriteRune(r)
	}

	var b strings.Builder
	dash := false
	for _, r := range ascii.String() {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
