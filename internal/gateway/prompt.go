package gateway

import "fmt"

// The prompts are written in Vietnamese, the language of every
// user-facing string, so the model answers in kind.

const definitionPrompt = `Cung cấp định nghĩa chi tiết và 3 ví dụ rõ ràng về nội dung "thối não" thuộc loại: "%s". Giải thích ngắn gọn tại sao nó có hại cho tư duy phản biện. Định dạng câu trả lời dưới dạng JSON với các khóa 'definition' (string) và 'examples' (mảng các chuỗi).`

const quizPrompt = `Tạo một bài trắc nghiệm gồm %d câu hỏi trắc nghiệm để kiểm tra khả năng nhận diện nội dung "thối não" của người dùng. Đối với mỗi câu hỏi, hãy cung cấp một kịch bản hoặc một tiêu đề nội dung. Các lựa chọn nên bao gồm một câu trả lời đúng (xác định đó là nội dung thối não và tại sao) và 2-3 câu trả lời gây nhiễu hợp lý. Bài kiểm tra nên bao gồm các loại khác nhau như tin giật gân, thông tin sai lệch và video ngắn vô nghĩa. Định dạng phản hồi dưới dạng một mảng JSON của các đối tượng, trong đó mỗi đối tượng có các khóa 'question', 'options' (mảng chuỗi) và 'correctAnswerIndex'.`

const feedbackPrompt = `Một người dùng đã đạt được %d trên %d điểm trong một bài kiểm tra về việc xác định nội dung "thối não". Cung cấp một phản hồi ngắn gọn, đáng khích lệ và mang tính xây dựng dựa trên số điểm này. Nếu điểm thấp, hãy đưa ra các mẹo để cải thiện. Nếu điểm cao, hãy khen ngợi kỹ năng tư duy phản biện của họ. Giữ độ dài dưới 100 từ và viết bằng tiếng Việt.`

const analysisPrompt = `Phân tích nhật ký tiêu thụ nội dung hàng ngày sau đây: %s. Mỗi mục ghi có 'type' và 'duration' tính bằng phút. Gán điểm "tiềm năng thối não" từ 1 (thấp) đến 5 (cao) cho mỗi loại nội dung. Tính toán "mức độ tiềm năng thối não" tổng thể cho ngày (từ 0 đến 100). Cung cấp một phân tích ngắn gọn về thói quen tiêu thụ của người dùng và 2-3 gợi ý có thể hành động để có một "khẩu phần thông tin" lành mạnh hơn. Định dạng phản hồi dưới dạng JSON với các khóa 'overallScore' (số), 'analysis' (chuỗi) và 'suggestions' (mảng chuỗi).`

// FeedbackFallback is returned by EvaluateScore when no feedback could be
// produced.
const FeedbackFallback = "Không thể tạo phản hồi. Vui lòng thử lại."

func buildDefinitionPrompt(topicName string) string {
	return fmt.Sprintf(definitionPrompt, topicName)
}

func buildQuizPrompt(n int) string {
	return fmt.Sprintf(quizPrompt, n)
}

func buildFeedbackPrompt(score, total int) string {
	return fmt.Sprintf(feedbackPrompt, score, total)
}

func buildAnalysisPrompt(logsJSON string) string {
	return fmt.Sprintf(analysisPrompt, logsJSON)
}
