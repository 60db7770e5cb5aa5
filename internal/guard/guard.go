// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package guard enforces a per-address submission quota for the contact form.
// It implements a fixed-window counter: each address gets maxRequests
// submissions per window, and the window resets as a whole once it expires.
// A fixed window admits bursts of up to 2x maxRequests around a window
// boundary; that trade-off is acceptable for a low-volume contact form.
package guard

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrRateLimited is returned when an address has exhausted its quota for the
// current window.
var ErrRateLimited = errors.New("rate limited")

// record tracks submissions from a single address within the current window.
type record struct {
	count       int
	windowStart time.Time
}

// Guard is a process-local fixed-window rate limiter keyed by client address.
// All state lives in memory and resets on restart; when the service runs as
// multiple replicas each replica enforces its own independent quota.
type Guard struct {
	mu      sync.Mutex
	records map[string]*record

	maxRequests int
	window      time.Duration

	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Guard allowing maxRequests submissions per address per window.
func New(maxRequests int, window time.Duration, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		records:     make(map[string]*record),
		maxRequests: maxRequests,
		window:      window,
		logger:      logger,
		now:         time.Now,
	}
}

// CheckAndRecord admits or rejects a submission from the given address.
// The read-check-increment sequence runs under the mutex so concurrent
// submissions from the same address cannot both slip under the quota.
// Rejected submissions do not increment the counter.
func (g *Guard) CheckAndRecord(addr string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	rec, exists := g.records[addr]
	if !exists {
		g.records[addr] = &record{count: 1, windowStart: now}
		return nil
	}

	if now.Sub(rec.windowStart) > g.window {
		rec.count = 1
		rec.windowStart = now
		return nil
	}

	if rec.count >= g.maxRequests {
		return ErrRateLimited
	}

	rec.count++
	return nil
}

// Len returns the number of tracked addresses.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.records)
}

// Sweep removes records whose window has expired, bounding table growth for
// long-running processes. Active windows are left untouched.
func (g *Guard) Sweep() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0
	for addr, rec := range g.records {
		if now.Sub(rec.windowStart) > g.window {
			delete(g.records, addr)
			removed++
		}
	}

	if removed > 0 {
		g.logger.Debug("swept expired rate limit records", "removed", removed, "remaining", len(g.records))
	}
}

// StartSweeper schedules Sweep every 10 minutes.
func (g *Guard) StartSweeper() error {
	g.cron = cron.New()
	if _, err := g.cron.AddFunc("*/10 * * * *", g.Sweep); err != nil {
		return err
	}
	g.cron.Start()
	g.logger.Info("submission guard sweeper started", "interval", "10m")
	return nil
}

// Stop halts the sweeper and waits for a running sweep to finish.
func (g *Guard) Stop() {
	if g.cron == nil {
		return
	}
	ctx := g.cron.Stop()
	<-ctx.Done()
	g.logger.Info("submission guard sweeper stopped")
}
