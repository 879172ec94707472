package usecase

import (
	"context"
	"fmt"
	"strings"

	"goldenwok/internal/infrastructure/mail"
	"goldenwok/pkg/errors"
)

type ContactUseCase struct {
	mailer mail.Sender
	inbox  string
}

func NewContactUseCase(mailer mail.Sender, inbox string) *ContactUseCase {
	return &ContactUseCase{
		mailer: mailer,
		inbox:  inbox,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendMessage forwards a contact-form submission to the restaurant inbox.
func (uc *ContactUseCase) SendMessage(ctx context.Context, input ContactInput) error {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return errors.BadRequest("All fields are required", nil)
	}

	text := fmt.Sprintf(
		"You have received a new message from the contact form:\nName: %s\nEmail: %s\nSubject: %s\nMessage:\n%s",
		input.Name, input.Email, input.Subject, input.Message,
	)
	html := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Subject:</strong> %s</p><p><strong>Message:</strong><br/>%s</p>",
		input.Name, input.Email, input.Subject, strings.ReplaceAll(input.Message, "\n", "<br/>"),
	)

	msg := &mail.Message{
		To:      uc.inbox,
		Subject: "Contact Form: " + input.Subject,
		Text:    text,
		HTML:    html,
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return errors.Internal("Failed to send message", err)
	}
	return nil
}
