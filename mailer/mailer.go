package mailer

import "context"

// Attachment is a binary file carried with an outbound email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a rendered email ready for dispatch.
type Message struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Dispatcher hands a rendered email to a delivery backend and reports the
// backend-assigned message id. Errors carry provider detail for the server
// log; callers must not forward them to the client.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) (string, error)
}
