// ABOUTME: Prompt template for the goal-picture narrative
// ABOUTME: Renders the Vietnamese writing instructions from a Form
package story

import (
	"bytes"
	"text/template"
)

// Footer is appended to every generated story
const Footer = "\n\nCảm ơn thầy tài phiệt Eric Lê, chủ tịch Đoàn Mai Ly, chủ tịch Khúc Quang Vương, doanh nhân Hồng Nga, cảm ơn tiềm thức."

var promptTemplate = template.Must(template.New("prompt").Parse(`
Bạn là một chuyên gia viết văn đầy cảm hứng, chuyên tạo ra những "bức tranh mục tiêu" sống động và mạnh mẽ.
Nhiệm vụ của bạn là viết một câu chuyện ở thì hiện tại, kể lại khoảnh khắc một người đạt được mục tiêu 30 ngày của họ.
Hãy sử dụng những thông tin sau đây để xây dựng câu chuyện:

- Ngày đạt được: {{.Date}}
- Tên nhân vật chính: {{.Name}}
- Địa điểm: {{.Location}}
- Số tiền đạt được: {{.Amount}} VND
- Tài khoản ngân hàng: {{.Account}}
- Khoảnh khắc nhận ra thành công: {{.Moment}}
- Ăn mừng trực tiếp cùng: {{.CelebrateWith1}}
- Những người nhắn tin chúc mừng: {{.CelebrateWith2}}
- Cách họ gọi nhân vật chính qua tin nhắn: {{.CelebrateWith2Pronoun}}
- Nơi nhắn tin báo tin vui: {{.MessageTo}}

**Yêu cầu BẮT BUỘC:**

1.  **Thì Hiện Tại:** Toàn bộ câu chuyện phải được viết ở thì hiện tại, như thể nó đang xảy ra ngay bây giờ. Bắt đầu bằng "Hôm nay, ngày {{.Date}}, tôi, {{.Name}}, đang...".
2.  **Tích hợp 6 Nhu Cầu Con Người của Tony Robbins:** Lồng ghép một cách tự nhiên những cảm xúc và trạng thái liên quan đến:
    *   **Chắc chắn (Certainty):** Cảm giác an toàn, tự tin, mọi thứ trong tầm kiểm soát.
    *   **Đa dạng (Variety):** Cảm giác phấn khích, bất ngờ thú vị.
    *   **Tầm quan trọng (Significance):** Cảm giác được công nhận, đặc biệt, đáng tự hào.
    *   **Kết nối & Yêu thương (Connection & Love):** Cảm giác ấm áp khi chia sẻ với người thân yêu.
    *   **Phát triển (Growth):** Cảm giác trưởng thành, vượt qua thử thách.
    *   **Cống hiến (Contribution):** Cảm giác thành công này có ý nghĩa lớn hơn cho cộng đồng (ví dụ: truyền cảm hứng cho nhóm).
3.  **Sử dụng 6 Giác Quan:** Mô tả chi tiết trải nghiệm bằng cách sử dụng:
    *   **Thị giác (Nhìn):** Họ thấy gì? (Ánh đèn, màu sắc, khung cảnh, màn hình điện thoại...)
    *   **Thính giác (Nghe):** Họ nghe thấy gì? (Tiếng "ting ting", nhạc, tiếng nói, tiếng reo hò...)
    *   **Xúc giác (Chạm):** Họ chạm vào gì? (Ly rượu, cái nắm tay, màn hình điện thoại...)
    *   **Khứu giác (Ngửi):** Họ ngửi thấy mùi gì? (Mùi thức ăn, nước hoa, không khí trong lành...)
    *   **Vị giác (Nếm):** Họ nếm vị gì? (Vị rượu vang, món ăn ngon...)
    *   **Cảm giác (Cảm xúc nội tâm):** Họ cảm thấy thế nào trong cơ thể? (Tim đập nhanh, lồng ngực ấm áp, sự nhẹ nhõm...)
4.  **Cấu trúc câu chuyện:**
    *   Mở đầu bằng bối cảnh (ngày, tên, địa điểm).
    *   Mô tả không gian bằng các giác quan.
    *   Diễn tả cảm xúc liên quan đến 6 nhu cầu.
    *   Mô tả khoảnh khắc "{{.Moment}}" và nhìn thấy số tiền.
    *   Kể lại cuộc đối thoại với {{.CelebrateWith1}}.
    *   Kể lại việc nhận tin nhắn từ {{.CelebrateWith2}}. Họ sẽ nhắn những lời chúc mừng và gọi nhân vật chính là "{{.CelebrateWith2Pronoun}}". Ví dụ: "Chúc mừng {{.CelebrateWith2Pronoun}} nhé!".
    *   Kể lại việc nhắn tin vào {{.MessageTo}} và phản ứng của mọi người.
    *   Kết thúc bằng câu: "Hôm nay là một ngày tuyệt vời của tôi."

**QUAN TRỌNG:** KHÔNG thêm bất kỳ lời cảm ơn nào ở cuối bài viết.
`))

// promptData is the form with display formatting applied
type promptData struct {
	Form
	Date   string
	Amount string
}

// Prompt renders the writing instructions for form
func Prompt(form Form) string {
	data := promptData{
		Form:   form,
		Date:   FormatDate(form.Date),
		Amount: FormatAmount(form.Amount),
	}

	var buf bytes.Buffer
	// the template only reads string fields; execution cannot fail
	_ = promptTemplate.Execute(&buf, data)
	return buf.String()
}
