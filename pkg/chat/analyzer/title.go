package analyzer

import (
	"regexp"
	"strings"
)

// Title candidate extraction is a greedy chain of matcher strategies: each
// strategy either yields a candidate or passes, and the first success wins.
// No backtracking happens once a strategy matches; occasional false positives
// are accepted in exchange for catching the common phrasings.

var (
	// "Frankenstein" in straight or smart quotes
	quotedTitleRegex = regexp.MustCompile(`["“”]([^"“”]+)["“”]`)

	// "phim X" / "về phim X", capture up to a trailing particle or end
	phimTitleRegex = regexp.MustCompile(`(?i)(?:về\s+)?phim\s+(.+?)(?:\s+(?:là|có|thế|nào|không|nhỉ|ạ)|\?|$)`)

	// "tìm X" / "tôi muốn tìm X", optionally dropping a trailing HH:MM token
	timTitleRegex = regexp.MustCompile(`(?i)(?:tôi\s+)?(?:muốn\s+)?(?:tìm|tim)\s+(.+?)(?:\s+\d{2}:\d{2})?$`)

	leadingPhraseRegex    = regexp.MustCompile(`(?i)^(tuyệt vời|mọi thứ về|cho tôi biết về|thông tin về|nội dung|kể về|giới thiệu|tìm)\s+`)
	trailingParticleRegex = regexp.MustCompile(`(?i)\s+(là gì|thế nào|như thế nào|nhỉ|ạ|\?|!|\.)+$`)
	leadingPhimRegex      = regexp.MustCompile(`(?i)^phim\s+`)
)

// ExtractTitleCandidate pulls at most one movie-title candidate out of the
// message. Intent and extracted genres gate only the last, most permissive
// strategy: a message that already named a genre is a genre query, not a title.
func ExtractTitleCandidate(message string, intent Intent, genres []string) (string, bool) {
	strategies := []func(string) (string, bool){
		matchQuotedTitle,
		matchPhimTitle,
		matchTimTitle,
		func(msg string) (string, bool) {
			return matchBareTitle(msg, intent, len(genres) > 0)
		},
	}

	for _, strategy := range strategies {
		if title, ok := strategy(message); ok {
			return title, true
		}
	}
	return "", false
}

func matchQuotedTitle(message string) (string, bool) {
	if m := quotedTitleRegex.FindStringSubmatch(message); m != nil {
		return m[1], true
	}
	return "", false
}

func matchPhimTitle(message string) (string, bool) {
	if m := phimTitleRegex.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func matchTimTitle(message string) (string, bool) {
	if m := timTitleRegex.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// matchBareTitle treats the whole message as a title once the discourse
// wrapping is stripped, e.g. "cho tôi biết về Avengers 4 là gì".
func matchBareTitle(message string, intent Intent, hasGenres bool) (string, bool) {
	if intent != IntentInfo && intent != IntentSearch {
		return "", false
	}
	if hasGenres {
		return "", false
	}

	clean := leadingPhraseRegex.ReplaceAllString(message, "")
	clean = trailingParticleRegex.ReplaceAllString(clean, "")
	clean = leadingPhimRegex.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	// Short messages like "Avengers 4" survive cleaning untouched; if cleaning
	// consumed everything, fall back to the raw message when it is short enough.
	if clean == "" {
		raw := strings.TrimSpace(message)
		if rawLen := len([]rune(raw)); rawLen > 2 && rawLen < 50 {
			clean = raw
		}
	}

	if cleanLen := len([]rune(clean)); cleanLen > 2 && cleanLen < 100 {
		return clean, true
	}
	return "", false
}
