package constant

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// Session id used when the caller does not name one.
	DefaultChatSessionId = "default"

	// How many prior exchanges feed the prompt on each turn.
	ChatHistoryWindow = 10

	// Fixed confidence annotation stored on assistant exchanges.
	ChatIntentConfidence = 0.8

	// Exchanges older than this are eligible for automatic purge.
	ChatRetentionWindow = 30 * 24 * time.Hour

	MaxRecommendedMovies = 5
)

// Localized user-facing apologies for model failures. The wording distinguishes
// an upstream overload from everything else; technical detail never leaks here.
const (
	ChatErrorGeneric = "Xin lỗi, tôi đang gặp sự cố. Vui lòng thử lại sau."
	ChatErrorBusy    = "AI đang bận, vui lòng thử lại sau vài giây."
)

// Fixed generic quick suggestions; a genre-specific one may be prepended.
var ChatGenericSuggestions = []string{
	"Gợi ý phim hay cho tôi",
	"Phim mới nhất là gì?",
	"Tìm phim hành động hay",
	"Giải thích nội dung phim này",
}
