package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// ReplySubject is the fixed subject line for inquiry replies.
const ReplySubject = "Re: Your Inquiry - AI•TECH Solutions"

// InquiryPlaceholder is quoted instead of the inquiry details when the
// related inquiry no longer exists.
const InquiryPlaceholder = "your inquiry"

var replyTemplate = template.Must(template.New("reply").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #ef4444;">AI&bull;TECH Solutions</h2>
  <p>Dear {{.RecipientName}},</p>
  <p>Thank you for {{.InquiryDetails}}. Here is our response:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    {{.Message}}
  </div>
  <p>Best regards,<br>AI&bull;TECH Solutions Team</p>
</div>
`))

type replyData struct {
	RecipientName  string
	InquiryDetails string
	// Message is admin-authored and embedded unescaped so formatting
	// survives into the mail body.
	Message template.HTML
}

// RenderReplyEmail renders the fixed HTML body for an inquiry reply.
// inquiryDetails may be empty; the generic placeholder is used then.
func RenderReplyEmail(recipientName, message, inquiryDetails string) (string, error) {
	details := strings.TrimSpace(inquiryDetails)
	if details == "" {
		details = InquiryPlaceholder
	}

	var b strings.Builder
	err := replyTemplate.Execute(&b, replyData{
		RecipientName:  recipientName,
		InquiryDetails: details,
		Message:        template.HTML(message),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render reply email: %w", err)
	}
	return b.String(), nil
}
