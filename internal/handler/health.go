// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	contentDir string
	version    string
	startTime  time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(contentDir, version string) *HealthHandler {
	return &HealthHandler{
		contentDir: contentDir,
		version:    version,
		startTime:  time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	contentCheck := h.checkContentDir()

	overallStatus := "healthy"
	if contentCheck.Status != "healthy" {
		overallStatus = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if overallStatus != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(w).Encode(HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks: map[string]Check{
			"content": contentCheck,
		},
	})
}

// Live handles GET /health/live requests. The process is up, nothing more.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}

// Ready handles GET /health/ready requests.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	contentCheck := h.checkContentDir()

	w.Header().Set("Content-Type", "application/json")
	if contentCheck.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

// checkContentDir verifies the content directory is readable.
func (h *HealthHandler) checkContentDir() Check {
	info, err := os.Stat(h.contentDir)
	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error()}
	}
	if !info.IsDir() {
		return Check{Status: "unhealthy", Message: "content path is not a directory"}
	}
	return Check{Status: "healthy"}
}
