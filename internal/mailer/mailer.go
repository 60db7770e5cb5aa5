// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailer defines the outbound mail interface for contact
// submissions.
package mailer

import (
	"context"
	"log/slog"
)

// Message is an outbound contact message.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer records messages via the structured logger instead of
// delivering them. It stands in until an SMTP or API backend is wired.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.InfoContext(ctx, "contact message received",
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
		"body_length", len(msg.Body))
	return nil
}
