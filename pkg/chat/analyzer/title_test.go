package analyzer

import "testing"

func TestExtractTitleCandidate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  Intent
		genres  []string
		want    string
		wantOK  bool
	}{
		{
			name:    "quoted title",
			message: `bạn biết gì về "Frankenstein" không`,
			intent:  IntentInfo,
			want:    "Frankenstein",
			wantOK:  true,
		},
		{
			name:    "smart quoted title",
			message: "phim “Biệt Kích Diệt Sói” hay không",
			intent:  IntentGeneral,
			want:    "Biệt Kích Diệt Sói",
			wantOK:  true,
		},
		{
			name:    "phim pattern",
			message: "phim Avengers",
			intent:  IntentSearch,
			want:    "Avengers",
			wantOK:  true,
		},
		{
			name:    "ve phim pattern with particle",
			message: "về phim Inception là gì",
			intent:  IntentInfo,
			want:    "Inception",
			wantOK:  true,
		},
		{
			name:    "phim pattern stops at question mark",
			message: "phim Titanic?",
			intent:  IntentSearch,
			want:    "Titanic",
			wantOK:  true,
		},
		{
			name:    "tim pattern",
			message: "tôi muốn tìm Interstellar",
			intent:  IntentSearch,
			want:    "Interstellar",
			wantOK:  true,
		},
		{
			name:    "tim pattern trims time token",
			message: "tìm Dune 21:30",
			intent:  IntentSearch,
			want:    "Dune",
			wantOK:  true,
		},
		{
			name:    "bare title with discourse prefix",
			message: "cho tôi biết về Avengers 4",
			intent:  IntentInfo,
			want:    "Avengers 4",
			wantOK:  true,
		},
		{
			name:    "bare short title",
			message: "Avengers 4",
			intent:  IntentSearch,
			want:    "Avengers 4",
			wantOK:  true,
		},
		{
			name:    "bare title blocked when genre present",
			message: "hành động",
			intent:  IntentSearch,
			genres:  []string{"hành động"},
			wantOK:  false,
		},
		{
			name:    "bare title blocked for general intent",
			message: "chuyện gì vậy",
			intent:  IntentGeneral,
			wantOK:  false,
		},
		{
			name:    "too short for bare title",
			message: "ab",
			intent:  IntentSearch,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTitleCandidate(tt.message, tt.intent, tt.genres)
			if ok != tt.wantOK {
				t.Fatalf("ExtractTitleCandidate(%q) ok = %v, want %v (got %q)", tt.message, ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractTitleCandidate(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Strategies are first-success-wins: a quoted title must win even when the
// "phim" pattern would also match.
func TestExtractTitleCandidateStrategyOrder(t *testing.T) {
	got, ok := ExtractTitleCandidate(`phim "Iron Man" có hay không`, IntentSearch, nil)
	if !ok || got != "Iron Man" {
		t.Errorf("quoted strategy should win, got %q ok=%v", got, ok)
	}
}
