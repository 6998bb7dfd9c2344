package analyzer

import (
	"reflect"
	"testing"
)

func TestExtractGenres(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single genre", "Gợi ý phim hành động", []string{"hành động"}},
		{"case insensitive", "PHIM KINH DỊ hay", []string{"kinh dị"}},
		{"multiple in vocabulary order", "phim lãng mạn và hành động", []string{"hành động", "lãng mạn"}},
		{"compound genre", "khoa học viễn tưởng có gì mới", []string{"khoa học viễn tưởng"}},
		{"no genre", "Xin chào bạn", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractGenres(tt.message)
			if got == nil {
				t.Fatal("ExtractGenres returned nil, want empty slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractGenres(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractGenresIdempotent(t *testing.T) {
	msg := "tìm phim hành động hoặc hài hoặc chiến tranh"
	first := ExtractGenres(msg)
	second := ExtractGenres(msg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ExtractGenres not idempotent: %v vs %v", first, second)
	}
}

func TestGenreVocabularyIsCopied(t *testing.T) {
	v := GenreVocabulary()
	if len(v) != 18 {
		t.Fatalf("vocabulary size = %d, want 18", len(v))
	}
	v[0] = "mutated"
	if GenreVocabulary()[0] != "hành động" {
		t.Error("GenreVocabulary must return a defensive copy")
	}
}
