package analyzer

import "strings"

// genreVocabulary is the fixed 18-label catalog vocabulary, in catalog order.
// It mirrors the seeded genre collection; ExtractGenres results preserve
// this order.
var genreVocabulary = []string{
	"hành động", "phiêu lưu", "hoạt hình", "hài", "tội phạm",
	"tài liệu", "chính kịch", "gia đình", "giả tưởng", "lịch sử",
	"kinh dị", "nhạc", "bí ẩn", "lãng mạn", "khoa học viễn tưởng",
	"gây cấn", "chiến tranh", "miền tây",
}

// GenreVocabulary returns a copy of the controlled genre vocabulary.
func GenreVocabulary() []string {
	out := make([]string, len(genreVocabulary))
	copy(out, genreVocabulary)
	return out
}

// ExtractGenres returns every vocabulary genre mentioned in the message,
// in vocabulary order. The result is never nil.
func ExtractGenres(message string) []string {
	lowerMsg := strings.ToLower(message)

	matched := make([]string, 0)
	for _, genre := range genreVocabulary {
		if strings.Contains(lowerMsg, genre) {
			matched = append(matched, genre)
		}
	}
	return matched
}
