package prompt

import (
	"fmt"
	"strings"

	"mozi-streaming-be/internal/constant"
)

// Profile is the slice of user context the system prompt cares about. A guest
// gets the zero value.
type Profile struct {
	UserName       string
	Plan           string
	FavoriteGenres []string
	WatchedTitles  []string // most recent first
}

// BuildSystemPrompt renders the assistant's system prompt for one turn:
// static product text plus conditional user lines. Pure and deterministic,
// identical profiles always yield identical prompts.
func BuildSystemPrompt(profile Profile) string {
	var sb strings.Builder
	sb.WriteString(constant.AssistantBasePrompt)

	name := profile.UserName
	if name == "" {
		name = constant.AssistantFallbackName
	}
	sb.WriteString(fmt.Sprintf("\n👤 NGƯỜI DÙNG: %s", name))

	if len(profile.FavoriteGenres) > 0 {
		sb.WriteString(fmt.Sprintf("\n❤️ THỂ LOẠI YÊU THÍCH: %s", strings.Join(profile.FavoriteGenres, ", ")))
	}

	if recent := recentDistinctTitles(profile.WatchedTitles, 5); len(recent) > 0 {
		sb.WriteString(fmt.Sprintf("\n📺 ĐÃ XEM GẦN ĐÂY: %s", strings.Join(recent, ", ")))
	}

	sb.WriteString(constant.AssistantPromptClosing)
	return sb.String()
}

func recentDistinctTitles(titles []string, max int) []string {
	seen := make(map[string]bool, len(titles))
	out := make([]string, 0, max)
	for _, title := range titles {
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		out = append(out, title)
		if len(out) == max {
			break
		}
	}
	return out
}
