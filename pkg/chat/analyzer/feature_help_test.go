package analyzer

import (
	"strings"
	"testing"
)

func TestLookupFeatureHelp(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:         "favorites",
			message:      "làm sao thêm phim vào yêu thích",
			wantContains: []string{"TÍNH NĂNG YÊU THÍCH"},
		},
		{
			name:         "watchlist",
			message:      "xem sau là gì",
			wantContains: []string{"TÍNH NĂNG XEM SAU"},
		},
		{
			name:         "download and quality together",
			message:      "tải phim chất lượng 4k",
			wantContains: []string{"TẢI XUỐNG OFFLINE", "CHẤT LƯỢNG PHIM"},
		},
		{
			name:      "no feature keywords",
			message:   "gợi ý phim hài",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupFeatureHelp(tt.message)
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("LookupFeatureHelp(%q) = %q, want empty", tt.message, got)
				}
				return
			}
			for _, frag := range tt.wantContains {
				if !strings.Contains(got, frag) {
					t.Errorf("LookupFeatureHelp(%q) missing fragment %q", tt.message, frag)
				}
			}
		})
	}
}

// Fragments always concatenate in fixed topic order regardless of keyword
// position in the message.
func TestLookupFeatureHelpTopicOrder(t *testing.T) {
	got := LookupFeatureHelp("chất lượng khi tải phim về")
	down := strings.Index(got, "TẢI XUỐNG OFFLINE")
	qual := strings.Index(got, "CHẤT LƯỢNG PHIM")
	if down == -1 || qual == -1 || down > qual {
		t.Errorf("expected download block before quality block, got %q", got)
	}
}
