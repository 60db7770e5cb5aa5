// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mkessler/folio-go/internal/guard"
	"github.com/mkessler/folio-go/internal/i18n"
	"github.com/mkessler/folio-go/internal/mailer"
	"github.com/mkessler/folio-go/internal/middleware"
)

// minMessageLength is the minimum accepted contact message length in bytes.
const minMessageLength = 10

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	guard  *guard.Guard
	mailer mailer.Mailer
	logger *slog.Logger
}

// NewContactHandler creates a contact handler.
func NewContactHandler(g *guard.Guard, m mailer.Mailer, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		guard:  g,
		mailer: m,
		logger: logger,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact. The submission guard runs before
// validation so malformed requests still consume quota.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	addr := middleware.ClientAddress(r)

	if err := h.guard.CheckAndRecord(addr); err != nil {
		if errors.Is(err, guard.ErrRateLimited) {
			h.logger.Warn("contact submission rate limited", "address", addr)
			writeJSONError(w, http.StatusTooManyRequests, i18n.T(locale, "contact.err_rate_limited"))
			return
		}
		h.logger.Error("submission guard failed", "address", addr, "error", err)
		writeJSONError(w, http.StatusInternalServerError, i18n.T(locale, "contact.err_internal"))
		return
	}

	req, err := decodeContactRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, i18n.T(locale, "contact.err_required"))
		return
	}

	if msg, ok := validateContact(req, locale); !ok {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.mailer.Send(r.Context(), mailer.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}); err != nil {
		h.logger.Error("sending contact message", "address", addr, "error", err)
		writeJSONError(w, http.StatusInternalServerError, i18n.T(locale, "contact.err_internal"))
		return
	}

	id := uuid.New().String()
	h.logger.Info("contact submission accepted", "id", id, "address", addr)

	writeJSONSuccess(w, map[string]any{
		"id":      id,
		"message": i18n.T(locale, "contact.success"),
	})
}

// decodeContactRequest reads a submission from a JSON body or a classic
// form post, so the page works without client-side scripting.
func decodeContactRequest(r *http.Request) (contactRequest, error) {
	var req contactRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Subject = r.PostFormValue("subject")
		req.Message = r.PostFormValue("message")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	return req, nil
}

// validateContact checks a submission and returns a localized error
// message for the first failing rule. Subject is optional.
func validateContact(req contactRequest, locale string) (string, bool) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return i18n.T(locale, "contact.err_required"), false
	}
	if !strings.Contains(req.Email, "@") {
		return i18n.T(locale, "contact.err_email"), false
	}
	if len(req.Message) < minMessageLength {
		return i18n.T(locale, "contact.err_message_short"), false
	}
	return "", true
}
