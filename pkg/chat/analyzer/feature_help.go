package analyzer

import "strings"

// featureHelpBlock is one keyword-triggered static help fragment.
type featureHelpBlock struct {
	keywords []string
	text     string
}

// Help blocks are independent and non-exclusive; a message can trigger several
// and the fragments always concatenate in this topic order.
var featureHelpBlocks = []featureHelpBlock{
	{
		keywords: []string{"yêu thích", "favorite"},
		text: "\n\n💖 TÍNH NĂNG YÊU THÍCH:\n" +
			"- Click icon ❤️ trên phim để thêm vào danh sách yêu thích\n" +
			"- Xem tất cả phim yêu thích tại trang \"My List\"\n" +
			"- Dễ dàng truy cập lại phim bạn thích nhất",
	},
	{
		keywords: []string{"xem sau", "watchlist"},
		text: "\n\n📌 TÍNH NĂNG XEM SAU:\n" +
			"- Click icon 🔖 để thêm phim vào danh sách xem sau\n" +
			"- Xem tại trang \"My List\"\n" +
			"- Hoàn hảo cho phim bạn muốn xem nhưng chưa có thời gian",
	},
	{
		keywords: []string{"lịch sử", "history", "đã xem"},
		text: "\n\n📺 LỊCH SỬ XEM:\n" +
			"- Tự động lưu tất cả phim bạn đã xem\n" +
			"- Lưu vị trí đã xem để tiếp tục sau\n" +
			"- Xem tại trang \"History\"\n" +
			"- Xóa lịch sử bất cứ lúc nào",
	},
	{
		keywords: []string{"tải", "download", "offline"},
		text: "\n\n📥 TẢI XUỐNG OFFLINE:\n" +
			"- Chỉ có với gói Premium và VIP\n" +
			"- Tải phim về xem khi không có mạng\n" +
			"- Chọn chất lượng tải xuống\n" +
			"- Quản lý phim đã tải trong thiết bị",
	},
	{
		keywords: []string{"chất lượng", "quality", "hd", "4k"},
		text: "\n\n🎬 CHẤT LƯỢNG PHIM:\n" +
			"- Free: 480p (SD)\n" +
			"- Basic: 720p (HD)\n" +
			"- Premium: 1080p (Full HD)\n" +
			"- VIP: 4K (Ultra HD)\n" +
			"- Tự động điều chỉnh theo tốc độ mạng",
	},
	{
		keywords: []string{"tìm kiếm", "search"},
		text: "\n\n🔍 TÌM KIẾM PHIM:\n" +
			"- Tìm theo tên phim, diễn viên, đạo diễn\n" +
			"- Lọc theo thể loại, năm, rating\n" +
			"- Sắp xếp theo: Mới nhất, Phổ biến, Rating\n" +
			"- Sử dụng thanh tìm kiếm ở góc trên",
	},
}

// LookupFeatureHelp concatenates the help fragments for every feature topic
// the message touches. Returns "" when nothing matched.
func LookupFeatureHelp(message string) string {
	lowerMsg := strings.ToLower(message)

	var sb strings.Builder
	for _, block := range featureHelpBlocks {
		if containsAny(lowerMsg, block.keywords) {
			sb.WriteString(block.text)
		}
	}
	return sb.String()
}
