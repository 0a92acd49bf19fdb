package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAppointmentConfirmation(toEmail, fullName string, scheduledAt time.Time, cancelURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendAppointmentConfirmation(toEmail, fullName string, scheduledAt time.Time, cancelURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "AskMediX Appointment Confirmation")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>Your AskMediX appointment is confirmed for:</p>
			<h3>%s at %s</h3>
			<p>Need to cancel? Click the button below:</p>
			<a href="%s" style="background-color: #DC3545; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Cancel Appointment</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>Stay healthy!</p>
		</div>
	`, fullName,
		scheduledAt.Format("Monday, 02 January 2006"),
		scheduledAt.Format("03:04 PM"),
		cancelURL, cancelURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Appointment confirmation sent to %s\n", toEmail)
	return nil
}
