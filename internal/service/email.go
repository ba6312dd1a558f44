package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"gardenhub-backend/internal/logger"
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

func (s *emailService) SendInvitation(ctx context.Context, email, inviterName, activateURL string) error {
	subject := fmt.Sprintf("%s invited you to GardenHub", inviterName)
	body := fmt.Sprintf("Hello,\n\n%s has invited you to join GardenHub, where neighbors share the work and the harvest of their community gardens.\n\nFollow this link to activate your account:\n\n%s\n\nBest regards,\nThe GardenHub Team", inviterName, activateURL)
	return s.send(email, subject, body)
}

func (s *emailService) SendNewOrderNotification(ctx context.Context, email, plotTitle, gardenTitle string) error {
	subject := fmt.Sprintf("New picking order in %s", gardenTitle)
	body := fmt.Sprintf("Hello,\n\nA new picking order was placed for plot '%s' in the garden '%s'. Log in to see the dates and the crops requested.\n\nBest regards,\nThe GardenHub Team", plotTitle, gardenTitle)
	return s.send(email, subject, body)
}

func (s *emailService) SendNewPickNotification(ctx context.Context, email, plotTitle, gardenTitle string) error {
	subject := fmt.Sprintf("Harvest recorded on %s", plotTitle)
	body := fmt.Sprintf("Hello,\n\nA picker just recorded a harvest on plot '%s' in the garden '%s'. Log in to see what was picked.\n\nBest regards,\nThe GardenHub Team", plotTitle, gardenTitle)
	return s.send(email, subject, body)
}

func (s *emailService) SendPickerReminder(ctx context.Context, email, gardenTitle string, unpickedPlots int) error {
	subject := fmt.Sprintf("Plots waiting to be picked in %s", gardenTitle)
	body := fmt.Sprintf("Hello,\n\n%d plot(s) in the garden '%s' have active picking orders with no harvest recorded today.\n\nBest regards,\nThe GardenHub Team", unpickedPlots, gardenTitle)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	logger.MailCall("send", to, subject)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		logger.MailResult("send", to, err)
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	logger.MailResult("send", to, nil)
	return nil
}
