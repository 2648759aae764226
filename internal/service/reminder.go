package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ReminderText is the fixed message delivered on every timer firing
const ReminderText = "⏰ Time to study your words!"

// Notifier delivers a reminder message to the user. Failures are
// logged and the timer keeps running.
type Notifier func(text string) error

// ReminderService runs a single cancellable periodic reminder timer.
// Set replaces the running timer atomically; at most one timer is ever
// active.
type ReminderService struct {
	logger *zap.Logger

	mu       sync.Mutex
	stop     chan struct{}
	interval time.Duration
}

// NewReminderService creates an idle reminder service
func NewReminderService(logger *zap.Logger) *ReminderService {
	return &ReminderService{logger: logger}
}

// Set cancels any running timer and starts a new one firing every
// interval, invoking notify on each firing
func (s *ReminderService) Set(interval time.Duration, notify Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	stop := make(chan struct{})
	s.stop = stop
	s.interval = interval

	go s.run(interval, notify, stop)

	s.logger.Info("Reminder timer set", zap.Duration("interval", interval))
}

// Cancel stops the running timer. Cancelling with nothing running is
// a no-op.
func (s *ReminderService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		s.logger.Info("Reminder timer cancelled", zap.Duration("interval", s.interval))
	}
	s.stopLocked()
}

// Active reports the running timer's interval, if any
func (s *ReminderService) Active() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval, s.stop != nil
}

// stopLocked closes the current timer's stop channel. Callers must
// hold s.mu.
func (s *ReminderService) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
		s.interval = 0
	}
}

// run is the timer loop: sleep, notify, resleep, until stopped
func (s *ReminderService) run(interval time.Duration, notify Notifier, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := notify(ReminderText); err != nil {
				s.logger.Error("Failed to deliver reminder", zap.Error(err))
			}
		}
	}
}

// ParseInterval parses a reminder interval spec: "one day" (24h),
// "N hour(s)" (default 1), "N minute(s)" (default 10), a bare integer
// as minutes, or a 10-minute default when nothing matches.
func ParseInterval(spec string) time.Duration {
	spec = strings.ToLower(strings.TrimSpace(spec))

	switch {
	case strings.Contains(spec, "day"):
		return 24 * time.Hour
	case strings.Contains(spec, "hour"):
		return time.Duration(digitsOr(spec, 1)) * time.Hour
	case strings.Contains(spec, "min"):
		return time.Duration(digitsOr(spec, 10)) * time.Minute
	}

	if minutes, err := strconv.Atoi(spec); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return 10 * time.Minute
}

// digitsOr extracts the digits embedded in spec, or returns def when
// spec carries none
func digitsOr(spec string, def int) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, spec)

	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return def
	}
	return n
}
