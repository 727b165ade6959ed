package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/progress"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestEmailServiceDisabledWithoutSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc, err := NewEmailService(context.Background(), "us-east-1", "", "", "skatejournal", "http://localhost", false, logger.FromZap(zap.New(core)))
	require.NoError(t, err)

	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.SendJournalReminder(context.Background(), &models.Profile{Email: "mia@example.com"}, 3))
	assert.Equal(t, 1, logs.FilterMessage("email service disabled: SES_FROM_EMAIL not configured").Len())
}

func TestSendJournalReminder(t *testing.T) {
	ses := &fakeSES{}
	svc := newEmailService(ses, "noreply@example.com", "Skate Journal", "skatejournal", "https://app.example.com", true, logger.Nop())

	err := svc.SendJournalReminder(context.Background(), &models.Profile{Name: "Mia", Email: "mia@example.com"}, 4)
	require.NoError(t, err)

	require.Len(t, ses.inputs, 1)
	in := ses.inputs[0]
	assert.Equal(t, "Skate Journal <noreply@example.com>", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, []string{"mia@example.com"}, in.Destination.ToAddresses)
	assert.Contains(t, aws.ToString(in.Content.Simple.Body.Text.Data), "4-day streak")
	assert.Contains(t, aws.ToString(in.Content.Simple.Body.Html.Data), "https://app.example.com/journal/new")
}

func TestSendJournalReminderErrors(t *testing.T) {
	ses := &fakeSES{err: errors.New("throttled")}
	svc := newEmailService(ses, "noreply@example.com", "", "skatejournal", "https://app.example.com", false, logger.Nop())

	assert.ErrorIs(t, svc.SendJournalReminder(context.Background(), &models.Profile{Name: "Mia"}, 0), ErrNoEmail)
	assert.ErrorContains(t, svc.SendJournalReminder(context.Background(), &models.Profile{Email: "mia@example.com"}, 0), "throttled")
}

func TestSendWeeklySummary(t *testing.T) {
	ses := &fakeSES{}
	svc := newEmailService(ses, "noreply@example.com", "", "skatejournal", "https://app.example.com", false, logger.Nop())

	change := 50.0
	summary := progress.Summary{
		Today:         models.MustParseDay("2024-06-16"),
		CurrentStreak: 5,
		LongestStreak: 9,
		Weekly: progress.PeriodSummary{
			TrainingMinutes: progress.Comparison{Current: 180, Previous: 120, PercentChange: &change},
			LandingRate:     progress.Comparison{Current: 62.5},
		},
		WeeklyGoal: &progress.WeeklyProgress{
			OnIceHours: progress.TargetProgress{Current: 3, Target: 4, Percent: 75},
		},
	}

	require.NoError(t, svc.SendWeeklySummary(context.Background(), &models.Profile{Name: "<Mia>", Email: "mia@example.com"}, summary))

	require.Len(t, ses.inputs, 1)
	in := ses.inputs[0]
	assert.Equal(t, "Your skatejournal week: 2024-06-10 to 2024-06-16", aws.ToString(in.Content.Simple.Subject.Data))
	text := aws.ToString(in.Content.Simple.Body.Text.Data)
	assert.Contains(t, text, "Training: 180 minutes (+50.0% vs last week)")
	assert.Contains(t, text, "Sessions: 0 (no change)")
	assert.Contains(t, text, "landing rate 62.5%")
	assert.Contains(t, text, "On-ice goal: 3.0 of 4.0 hours (75%)")
	assert.Contains(t, aws.ToString(in.Content.Simple.Body.Html.Data), "&lt;Mia&gt;")
}
