package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/linkdesk-io/linkdesk/internal/shared/config"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// Service sends transactional mail for workflow events. When SMTP is not
// configured every method logs and returns nil so fan-out keeps working in
// development.
type Service interface {
	SendOrderStatusEmail(to, orderRef, status string) error
	SendOrderCommentEmail(to, orderRef, author string) error
	SendTicketReplyEmail(to, subject string, ticketID uint) error
	SendTicketClosedEmail(to, subject string, ticketID uint) error
	SendInvoiceEmail(to, number string, amountCents int64) error
	SendFeedbackRequestEmail(to, campaignName string) error
}

type SMTPService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	log    logger.Interface
}

func NewSMTPService(cfg *config.EmailConfig, log logger.Interface) *SMTPService {
	var dialer *gomail.Dialer
	if cfg.Enabled() {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return &SMTPService{cfg: cfg, dialer: dialer, log: log}
}

func (s *SMTPService) SendOrderStatusEmail(to, orderRef, status string) error {
	subject := fmt.Sprintf("Order %s is now %s", orderRef, status)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Order Update</h2>
			<p>Your order <strong>%s</strong> moved to status <strong>%s</strong>.</p>
			<p>Log in to your dashboard to see the details.</p>
		</body>
		</html>
	`, orderRef, status)
	plainBody := fmt.Sprintf("Your order %s moved to status %s.\n\nLog in to your dashboard to see the details.\n", orderRef, status)
	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) SendOrderCommentEmail(to, orderRef, author string) error {
	subject := fmt.Sprintf("New comment on order %s", orderRef)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Comment</h2>
			<p><strong>%s</strong> commented on your order <strong>%s</strong>.</p>
			<p>Log in to your dashboard to reply.</p>
		</body>
		</html>
	`, author, orderRef)
	plainBody := fmt.Sprintf("%s commented on your order %s.\n\nLog in to your dashboard to reply.\n", author, orderRef)
	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) SendTicketReplyEmail(to, subject string, ticketID uint) error {
	mailSubject := fmt.Sprintf("New reply on ticket #%d: %s", ticketID, subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Update</h2>
			<p>There is a new reply on your support ticket <strong>#%d</strong> (%s).</p>
			<p>Log in to your dashboard to continue the conversation.</p>
		</body>
		</html>
	`, ticketID, subject)
	plainBody := fmt.Sprintf("There is a new reply on your support ticket #%d (%s).\n", ticketID, subject)
	return s.send(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPService) SendTicketClosedEmail(to, subject string, ticketID uint) error {
	mailSubject := fmt.Sprintf("Ticket #%d closed: %s", ticketID, subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Closed</h2>
			<p>Your support ticket <strong>#%d</strong> (%s) has been closed.</p>
			<p>Replying to the ticket will reopen it.</p>
		</body>
		</html>
	`, ticketID, subject)
	plainBody := fmt.Sprintf("Your support ticket #%d (%s) has been closed.\nReplying to the ticket will reopen it.\n", ticketID, subject)
	return s.send(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPService) SendInvoiceEmail(to, number string, amountCents int64) error {
	subject := fmt.Sprintf("Invoice %s", number)
	amount := fmt.Sprintf("$%d.%02d", amountCents/100, amountCents%100)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Invoice</h2>
			<p>Invoice <strong>%s</strong> for <strong>%s</strong> has been issued to your account.</p>
			<p>Log in to your dashboard to view and settle it.</p>
		</body>
		</html>
	`, number, amount)
	plainBody := fmt.Sprintf("Invoice %s for %s has been issued to your account.\n", number, amount)
	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) SendFeedbackRequestEmail(to, campaignName string) error {
	subject := "We'd love your feedback"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Tell Us How We're Doing</h2>
			<p>We have a short survey for you: <strong>%s</strong>.</p>
			<p>Log in to your dashboard to answer. It takes less than a minute.</p>
		</body>
		</html>
	`, campaignName)
	plainBody := fmt.Sprintf("We have a short survey for you: %s. Log in to your dashboard to answer.\n", campaignName)
	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) send(to, subject, htmlBody, plainBody string) error {
	if s.dialer == nil {
		s.log.Infow("email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
