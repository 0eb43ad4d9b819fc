package analytics

import "unicode/utf16"

// SimpleHash is the 32-bit string hash used by the browser client
// (h = h*31 + c over UTF-16 code units, wrapped to int32, then absolute value).
// Both sides must agree so a visitor lands in the same bucket everywhere.
func SimpleHash(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}

// Pick chooses a variant for userID in test.
func Pick(userID, test string, variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[SimpleHash(userID+test)%int64(len(variants))]
}
