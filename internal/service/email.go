package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendQuoteReceived(ctx context.Context, to, garageName, supplierName, partName string, totalCents int32) error {
	subject := fmt.Sprintf("New quote for %s", partName)
	body := fmt.Sprintf("Hello %s,\n\n%s has quoted %s at $%.2f total.\n\nLog in to the FixWize console to review and accept the quote.\n\nBest regards,\nThe FixWize Team",
		garageName, supplierName, partName, float64(totalCents)/100)
	return s.send(to, subject, body)
}

func (s *emailService) SendMemberWelcome(ctx context.Context, to, name, username, orgName string) error {
	subject := fmt.Sprintf("Welcome to %s on FixWize", orgName)
	body := fmt.Sprintf("Hello %s,\n\nAn account has been created for you at %s.\n\nYour username is: %s\n\nBest regards,\nThe FixWize Team",
		name, orgName, username)
	return s.send(to, subject, body)
}

func (s *emailService) SendNeededByReminder(ctx context.Context, to, garageName, description string, neededBy time.Time) error {
	subject := "Part request deadline approaching"
	body := fmt.Sprintf("Hello %s,\n\nYour open part request \"%s\" is needed by %s and has not been accepted yet.\n\nBest regards,\nThe FixWize Team",
		garageName, description, neededBy.Format("2006-01-02"))
	return s.send(to, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
