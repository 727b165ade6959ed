package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/progress"
)

type fakeProfiles struct {
	profiles []models.Profile
	err      error
}

func (f *fakeProfiles) ListReminderEnabled() ([]models.Profile, error) {
	return f.profiles, f.err
}

type fakeEntries map[string]models.Day

func (f fakeEntries) HasEntryOn(ownerID string, day models.Day) (bool, error) {
	return f[ownerID] == day, nil
}

type fakeSummaries struct{ streak int }

func (f fakeSummaries) Summary(ownerID string) (progress.Summary, error) {
	return progress.Summary{CurrentStreak: f.streak}, nil
}

type fakeMailer struct {
	mu        sync.Mutex
	reminders []string
	summaries []string
	streaks   []int
	fail      error
}

func (f *fakeMailer) SendJournalReminder(ctx context.Context, p *models.Profile, streak int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.reminders = append(f.reminders, p.OwnerID)
	f.streaks = append(f.streaks, streak)
	return nil
}

func (f *fakeMailer) SendWeeklySummary(ctx context.Context, p *models.Profile, summary progress.Summary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.summaries = append(f.summaries, p.OwnerID)
	return nil
}

type countingRecorder struct {
	sent, failed int
}

func (c *countingRecorder) EmailSent(kind string, err error) {
	if err != nil {
		c.failed++
		return
	}
	c.sent++
}

func newScheduler(profiles []models.Profile, entries fakeEntries, mailer *fakeMailer, rec Recorder, at string) *Scheduler {
	s := NewScheduler(&fakeProfiles{profiles: profiles}, entries, fakeSummaries{streak: 4}, mailer, rec, time.Minute, logger.Nop())
	now, _ := time.Parse(time.RFC3339, at)
	s.now = func() time.Time { return now }
	return s
}

func profile(owner, email, at, tz string) models.Profile {
	return models.Profile{OwnerID: owner, Email: email, ReminderEnabled: true, ReminderTime: at, TimeZone: tz}
}

func TestTickSendsReminderOncePerDay(t *testing.T) {
	mailer := &fakeMailer{}
	rec := &countingRecorder{}
	// Wednesday 2024-06-12 20:30 UTC
	s := newScheduler([]models.Profile{profile("owner-1", "mia@example.com", "20:00", "")}, fakeEntries{}, mailer, rec, "2024-06-12T20:30:00Z")

	assert.Equal(t, 1, s.Tick(context.Background()))
	assert.Equal(t, 0, s.Tick(context.Background()))

	assert.Equal(t, []string{"owner-1"}, mailer.reminders)
	assert.Equal(t, []int{4}, mailer.streaks)
	assert.Empty(t, mailer.summaries)
	assert.Equal(t, 1, rec.sent)
}

func TestTickSkipsOwnersWhoJournaled(t *testing.T) {
	mailer := &fakeMailer{}
	entries := fakeEntries{"owner-1": models.MustParseDay("2024-06-12")}
	profiles := []models.Profile{
		profile("owner-1", "mia@example.com", "20:00", ""),
		profile("owner-2", "", "20:00", ""),
		profile("owner-3", "zoe@example.com", "21:00", ""),
	}
	s := newScheduler(profiles, entries, mailer, nil, "2024-06-12T20:30:00Z")

	assert.Equal(t, 0, s.Tick(context.Background()))
	assert.Empty(t, mailer.reminders)
}

func TestTickUsesLocalDay(t *testing.T) {
	mailer := &fakeMailer{}
	// 2024-06-13 02:30 UTC is 2024-06-12 22:30 in New York
	entries := fakeEntries{"owner-1": models.MustParseDay("2024-06-12")}
	s := newScheduler([]models.Profile{profile("owner-1", "mia@example.com", "20:00", "America/New_York")}, entries, mailer, nil, "2024-06-13T02:30:00Z")

	assert.Equal(t, 0, s.Tick(context.Background()), "entry on the local day counts")
}

func TestTickSendsWeeklySummaryOnSunday(t *testing.T) {
	mailer := &fakeMailer{}
	entries := fakeEntries{"owner-1": models.MustParseDay("2024-06-16")}
	s := newScheduler([]models.Profile{profile("owner-1", "mia@example.com", "19:00", "")}, entries, mailer, nil, "2024-06-16T19:30:00Z")

	assert.Equal(t, 1, s.Tick(context.Background()))
	assert.Equal(t, 0, s.Tick(context.Background()))
	assert.Equal(t, []string{"owner-1"}, mailer.summaries)
	assert.Empty(t, mailer.reminders)
}

func TestTickRetriesAfterFailure(t *testing.T) {
	mailer := &fakeMailer{fail: errors.New("throttled")}
	rec := &countingRecorder{}
	s := newScheduler([]models.Profile{profile("owner-1", "mia@example.com", "20:00", "")}, fakeEntries{}, mailer, rec, "2024-06-12T20:30:00Z")

	assert.Equal(t, 0, s.Tick(context.Background()))
	assert.Equal(t, 1, rec.failed)

	mailer.fail = nil
	assert.Equal(t, 1, s.Tick(context.Background()))
}

func TestTickListError(t *testing.T) {
	s := NewScheduler(&fakeProfiles{err: errors.New("db down")}, fakeEntries{}, fakeSummaries{}, &fakeMailer{}, nil, time.Minute, logger.Nop())
	assert.Equal(t, 0, s.Tick(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	s := NewScheduler(&fakeProfiles{}, fakeEntries{}, fakeSummaries{}, &fakeMailer{}, nil, time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "scheduler did not stop")
	}
}
