package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(to, otp string) error
}

type emailService struct {
	host       string
	port       int
	email      string
	password   string
	senderName string
}

func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	return &emailService{
		host:       host,
		port:       port,
		email:      email,
		password:   password,
		senderName: senderName,
	}
}

func (s *emailService) SendOTP(to, otp string) error {
	if s.host == "" {
		// SMTP not configured (dev); the caller logs the code instead.
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.email, s.senderName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>. It expires in 15 minutes.</p>", otp))

	d := gomail.NewDialer(s.host, s.port, s.email, s.password)
	return d.DialAndSend(m)
}
