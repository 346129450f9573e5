package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type resendDispatcher struct {
	client *resend.Client
}

// NewResendDispatcher wraps the Resend API as a Dispatcher.
func NewResendDispatcher(apiKey string) Dispatcher {
	return &resendDispatcher{client: resend.NewClient(apiKey)}
}

func (d *resendDispatcher) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	sent, err := d.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
