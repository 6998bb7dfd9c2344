package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPromptIsDeterministic(t *testing.T) {
	profile := Profile{
		UserName:       "Minh",
		Plan:           "premium",
		FavoriteGenres: []string{"hành động", "kinh dị"},
		WatchedTitles:  []string{"Dune", "Inception"},
	}
	assert.Equal(t, BuildSystemPrompt(profile), BuildSystemPrompt(profile))
}

func TestBuildSystemPromptGuest(t *testing.T) {
	got := BuildSystemPrompt(Profile{})

	assert.Contains(t, got, "MOZI")
	assert.Contains(t, got, "NGƯỜI DÙNG: bạn")
	assert.NotContains(t, got, "THỂ LOẠI YÊU THÍCH")
	assert.NotContains(t, got, "ĐÃ XEM GẦN ĐÂY")
}

func TestBuildSystemPromptUserLines(t *testing.T) {
	got := BuildSystemPrompt(Profile{
		UserName:       "Lan",
		FavoriteGenres: []string{"hài", "lãng mạn"},
		WatchedTitles:  []string{"Titanic", "Titanic", "Up", "Dune", "Coco", "Her", "Soul"},
	})

	assert.Contains(t, got, "NGƯỜI DÙNG: Lan")
	assert.Contains(t, got, "THỂ LOẠI YÊU THÍCH: hài, lãng mạn")

	// Duplicates collapse and the list caps at the 5 most recent.
	assert.Contains(t, got, "ĐÃ XEM GẦN ĐÂY: Titanic, Up, Dune, Coco, Her")
	assert.NotContains(t, got, "Soul")
	assert.True(t, strings.HasSuffix(got, "thân thiện!"))
}
