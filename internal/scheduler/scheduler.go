package scheduler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler manages the weekly cron trigger for the planning pipeline.
type Scheduler struct {
	cron     *cron.Cron
	mu       sync.Mutex
	entryID  cron.EntryID
	location *time.Location
	log      *zap.Logger
}

// New creates a Scheduler in the given timezone.
func New(timezone string, log *zap.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		location: loc,
		log:      log,
	}, nil
}

// Schedule sets up the weekly run on the given weekday at the given time
// (HH:MM). A previous schedule, if any, is replaced.
func (s *Scheduler) Schedule(weekday, at string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, err := parseWeekday(weekday)
	if err != nil {
		return err
	}
	hour, minute, err := parseTime(at)
	if err != nil {
		return err
	}

	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}

	expr := fmt.Sprintf("%d %d * * %d", minute, hour, day)
	entryID, err := s.cron.AddFunc(expr, task)
	if err != nil {
		return fmt.Errorf("adding cron entry: %w", err)
	}

	s.entryID = entryID
	s.log.Info("weekly run scheduled",
		zap.String("weekday", weekday),
		zap.String("at", at),
		zap.String("cron", expr),
		zap.String("timezone", s.location.String()),
	)
	return nil
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

var weekdays = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

// parseWeekday accepts full weekday names, case-insensitive.
func parseWeekday(name string) (int, error) {
	if day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("invalid weekday %q", name)
}

// parseTime extracts hour and minute from HH:MM format.
func parseTime(t string) (int, int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, 0, fmt.Errorf("invalid time format %q: must be HH:MM", t)
	}

	hour := (int(t[0]-'0') * 10) + int(t[1]-'0')
	minute := (int(t[3]-'0') * 10) + int(t[4]-'0')

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: hour 0-23, minute 0-59", t)
	}

	return hour, minute, nil
}
