// Package reminder polls skater profiles and sends the daily journal
// reminder and the Sunday weekly summary by email.
package reminder

import (
	"context"
	"sync"
	"time"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/progress"
)

const (
	kindReminder = "reminder"
	kindSummary  = "weekly_summary"
)

// ProfileLister returns every profile with reminders switched on
type ProfileLister interface {
	ListReminderEnabled() ([]models.Profile, error)
}

// EntryChecker reports whether an owner journaled on a day
type EntryChecker interface {
	HasEntryOn(ownerID string, day models.Day) (bool, error)
}

// Summarizer computes an owner's dashboard summary
type Summarizer interface {
	Summary(ownerID string) (progress.Summary, error)
}

// Mailer delivers the two kinds of email
type Mailer interface {
	SendJournalReminder(ctx context.Context, p *models.Profile, streak int) error
	SendWeeklySummary(ctx context.Context, p *models.Profile, summary progress.Summary) error
}

// Recorder receives the outcome of every send
type Recorder interface {
	EmailSent(kind string, err error)
}

// Scheduler sends at most one reminder per owner per local day and one
// summary per owner per week.
type Scheduler struct {
	profiles ProfileLister
	entries  EntryChecker
	progress Summarizer
	mailer   Mailer
	recorder Recorder
	log      *logger.Logger
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	reminded   map[string]models.Day
	summarized map[string]models.Day
}

// NewScheduler creates a scheduler polling every interval. recorder may be nil.
func NewScheduler(profiles ProfileLister, entries EntryChecker, summaries Summarizer, mailer Mailer, recorder Recorder, interval time.Duration, log *logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		profiles:   profiles,
		entries:    entries,
		progress:   summaries,
		mailer:     mailer,
		recorder:   recorder,
		log:        log,
		interval:   interval,
		now:        time.Now,
		reminded:   make(map[string]models.Day),
		summarized: make(map[string]models.Day),
	}
}

// Run polls until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("reminder scheduler started", "interval", s.interval.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one polling pass and returns how many emails were sent
func (s *Scheduler) Tick(ctx context.Context) int {
	profiles, err := s.profiles.ListReminderEnabled()
	if err != nil {
		s.log.Error("failed to list reminder profiles", "error", err)
		return 0
	}

	now := s.now()
	sent := 0
	for i := range profiles {
		if ctx.Err() != nil {
			return sent
		}
		p := &profiles[i]
		if p.Email == "" || !p.ReminderDue(now) {
			continue
		}
		today := models.Today(now, p.Location())
		sent += s.process(ctx, p, today)
	}
	return sent
}

func (s *Scheduler) process(ctx context.Context, p *models.Profile, today models.Day) int {
	sent := 0
	var summary *progress.Summary
	loadSummary := func() (*progress.Summary, bool) {
		if summary != nil {
			return summary, true
		}
		sum, err := s.progress.Summary(p.OwnerID)
		if err != nil {
			s.log.Error("failed to compute summary", "owner_id", p.OwnerID, "error", err)
			return nil, false
		}
		summary = &sum
		return summary, true
	}

	if s.needsReminder(p.OwnerID, today) {
		has, err := s.entries.HasEntryOn(p.OwnerID, today)
		switch {
		case err != nil:
			s.log.Error("failed to check journal entry", "owner_id", p.OwnerID, "error", err)
		case has:
			s.markReminded(p.OwnerID, today)
		default:
			if sum, ok := loadSummary(); ok {
				err := s.mailer.SendJournalReminder(ctx, p, sum.CurrentStreak)
				s.record(kindReminder, err)
				if err != nil {
					s.log.Error("failed to send journal reminder", "owner_id", p.OwnerID, "error", err)
				} else {
					s.markReminded(p.OwnerID, today)
					sent++
				}
			}
		}
	}

	if today.Weekday() == time.Sunday && s.needsSummary(p.OwnerID, today.WeekStart()) {
		if sum, ok := loadSummary(); ok {
			err := s.mailer.SendWeeklySummary(ctx, p, *sum)
			s.record(kindSummary, err)
			if err != nil {
				s.log.Error("failed to send weekly summary", "owner_id", p.OwnerID, "error", err)
			} else {
				s.markSummarized(p.OwnerID, today.WeekStart())
				sent++
			}
		}
	}
	return sent
}

func (s *Scheduler) needsReminder(ownerID string, today models.Day) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminded[ownerID] != today
}

func (s *Scheduler) markReminded(ownerID string, today models.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminded[ownerID] = today
}

func (s *Scheduler) needsSummary(ownerID string, week models.Day) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summarized[ownerID] != week
}

func (s *Scheduler) markSummarized(ownerID string, week models.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summarized[ownerID] = week
}

func (s *Scheduler) record(kind string, err error) {
	if s.recorder != nil {
		s.recorder.EmailSent(kind, err)
	}
}
