package analyzer

import (
	"regexp"
	"strings"
)

// Intent is the coarse classification of what a user message is asking for.
type Intent string

const (
	IntentRecommend Intent = "recommend"
	IntentSearch    Intent = "search"
	IntentInfo      Intent = "info"
	IntentSupport   Intent = "support"
	IntentHowto     Intent = "howto"
	IntentGeneral   Intent = "general"
)

// Keyword sets per intent. Evaluation order is a deliberate priority:
// recommend > search > info > support > howto. Do not reorder.
var (
	recommendKeywords = []string{"gợi ý", "đề xuất", "recommend", "phim hay", "nên xem", "xem gì"}
	searchKeywords    = []string{"tìm", "search", "có phim", "phim nào", "tìm kiếm"}
	infoKeywords      = []string{"là gì", "thông tin", "nội dung", "diễn viên", "đạo diễn", "về phim", "kể về"}
	supportKeywords   = []string{
		"gói", "subscription", "đăng ký", "giá", "tính năng", "premium", "vip",
		"basic", "free", "nâng cấp", "upgrade", "thanh toán", "payment",
	}
	howtoKeywords = []string{
		"làm sao", "cách", "how to", "hướng dẫn", "sử dụng", "thêm vào",
		"xóa", "tải xuống", "download",
	}
)

// Short-phrase heuristic: a bare 2-4 word message that looks like a movie name
// is a search. Greetings and courtesy openers are excluded so "Xin chào" or
// "Cảm ơn bạn" stay general.
var (
	commonPhraseRegex = regexp.MustCompile(`^(?i)(xin chào|chào|hello|hi|hey|cảm ơn|thank|tôi muốn|tôi cần|bạn có thể|làm ơn|làm sao)`)
	titleCharsRegex   = regexp.MustCompile(`^[a-zA-ZÀ-ỹ0-9\s:.\-]+$`)
)

// ClassifyIntent maps a free-text message to exactly one Intent.
// The keyword rules run first in priority order; the short-phrase heuristic
// runs last so it never shadows an explicit feature or how-to keyword, even
// though its result is IntentSearch.
func ClassifyIntent(message string) Intent {
	lowerMsg := strings.ToLower(message)

	if containsAny(lowerMsg, recommendKeywords) {
		return IntentRecommend
	}
	if containsAny(lowerMsg, searchKeywords) {
		return IntentSearch
	}
	if containsAny(lowerMsg, infoKeywords) {
		return IntentInfo
	}
	if containsAny(lowerMsg, supportKeywords) {
		return IntentSupport
	}
	if containsAny(lowerMsg, howtoKeywords) {
		return IntentHowto
	}
	if looksLikeTitleQuery(message) {
		return IntentSearch
	}

	return IntentGeneral
}

func containsAny(lowerMsg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerMsg, kw) {
			return true
		}
	}
	return false
}

func looksLikeTitleQuery(message string) bool {
	trimmed := strings.TrimSpace(message)
	if commonPhraseRegex.MatchString(trimmed) {
		return false
	}

	wordCount := len(strings.Fields(trimmed))
	if wordCount < 2 || wordCount > 4 {
		return false
	}

	length := len([]rune(trimmed))
	return length >= 3 && length < 50 && titleCharsRegex.MatchString(trimmed)
}
