package content

// Topic is a glossary entry the user can look up.
type Topic struct {
	Key  string
	Name string
}

// Topics is the fixed glossary catalog, in display order.
var Topics = []Topic{
	{Key: "clickbait", Name: "Tin tức giật gân (Clickbait)"},
	{Key: "mindless_videos", Name: "Video ngắn vô nghĩa"},
	{Key: "social_media_drama", Name: "Drama & Tin đồn trên mạng xã hội"},
	{Key: "conspiracy_theories", Name: "Thuyết âm mưu không có căn cứ"},
	{Key: "hate_speech", Name: "Nội dung mang tính thù ghét"},
}

// ContentTypes is the fixed set of tracker content types, in display order.
var ContentTypes = []string{
	"Video ngắn (TikTok, Reels, Shorts)",
	"Lướt feed mạng xã hội (Facebook, Instagram)",
	"Tin tức giật gân, lá cải",
	"Drama, hóng chuyện showbiz",
	"Nội dung tiêu cực, than vãn",
	"Xem livestream bán hàng",
	"Khác",
}

// TopicByKey looks up a glossary topic by its key.
func TopicByKey(key string) (Topic, bool) {
	for _, t := range Topics {
		if t.Key == key {
			return t, true
		}
	}
	return Topic{}, false
}

// IsContentType reports whether t belongs to the tracker catalog.
func IsContentType(t string) bool {
	for _, ct := range ContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}
