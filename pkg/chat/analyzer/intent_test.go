package analyzer

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"recommend keyword", "Gợi ý phim hành động", IntentRecommend},
		{"recommend english", "recommend me something", IntentRecommend},
		{"recommend wins over howto", "gợi ý cách tải xuống", IntentRecommend},
		{"search keyword", "tìm phim kinh dị", IntentSearch},
		{"search phrase", "có phim nào mới không", IntentSearch},
		{"info keyword", "nội dung Inception là gì", IntentInfo},
		{"info actor", "diễn viên chính của Titanic", IntentInfo},
		{"support plan", "gói premium bao nhiêu tiền", IntentSupport},
		{"support payment", "thanh toán bằng thẻ được không", IntentSupport},
		{"howto", "làm sao thêm phim vào yêu thích", IntentHowto},
		{"howto download", "hướng dẫn download", IntentHowto},
		{"bare title two words", "phim Avengers", IntentSearch},
		{"bare title short query", "Biệt Kích Diệt Sói", IntentSearch},
		{"single word stays general", "Frankenstein", IntentGeneral},
		{"greeting excluded from heuristic", "Xin chào", IntentGeneral},
		{"courtesy excluded", "Cảm ơn bạn", IntentGeneral},
		{"vague opener excluded", "Bạn có thể giúp tôi", IntentGeneral},
		{"empty-ish", "   ", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Keyword priority must hold when categories co-occur in one message.
func TestClassifyIntentPriority(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"gợi ý phim nào hay", IntentRecommend},         // recommend > search
		{"tìm thông tin phim", IntentSearch},            // search > info
		{"thông tin gói premium", IntentInfo},           // info > support
		{"gói vip dùng thế nào", IntentSupport},      // support > howto
		{"nâng cấp bằng cách nào", IntentSupport},    // support > howto
		{"gợi ý phim, tìm phim, nội dung", IntentRecommend},
	}

	for _, tt := range tests {
		if got := ClassifyIntent(tt.message); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestClassifyIntentIsTotal(t *testing.T) {
	known := map[Intent]bool{
		IntentRecommend: true, IntentSearch: true, IntentInfo: true,
		IntentSupport: true, IntentHowto: true, IntentGeneral: true,
	}
	inputs := []string{"a", "xyz 123", "?!", "phim", "ồ", "一二三", "tìm gợi ý mọi thứ"}
	for _, in := range inputs {
		if got := ClassifyIntent(in); !known[got] {
			t.Errorf("ClassifyIntent(%q) returned unknown intent %q", in, got)
		}
	}
}
