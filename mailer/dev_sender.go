package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DevDispatcher saves outbound emails to a local directory instead of
// sending them. Wired when no Resend API key is configured, so the forms
// stay testable in development.
type DevDispatcher struct {
	dir string
}

func NewDevDispatcher(dir string) *DevDispatcher {
	return &DevDispatcher{dir: dir}
}

type devMetadata struct {
	ID          string   `json:"id"`
	Timestamp   string   `json:"timestamp"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	ReplyTo     string   `json:"replyTo,omitempty"`
	Subject     string   `json:"subject"`
	Attachments []string `json:"attachments,omitempty"`
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Send writes the HTML body and a JSON metadata sidecar to the directory
// and returns a locally generated message id.
func (d *DevDispatcher) Send(_ context.Context, msg Message) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create outbox dir: %w", err)
	}

	id := uuid.NewString()
	base := fmt.Sprintf("%s_%s",
		time.Now().Format("2006_01_02_150405"),
		unsafeFilename.ReplaceAllString(msg.Subject, "_"),
	)

	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(msg.HTML), 0o644); err != nil {
		return "", fmt.Errorf("write email html: %w", err)
	}

	meta := devMetadata{
		ID:        id,
		Timestamp: time.Now().Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
	}
	for _, a := range msg.Attachments {
		meta.Attachments = append(meta.Attachments, a.Filename)
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal email metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return "", fmt.Errorf("write email metadata: %w", err)
	}

	return id, nil
}

var _ Dispatcher = (*DevDispatcher)(nil)
