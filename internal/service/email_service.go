package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/progress"
)

// sesSender is the part of the SES client the email service uses
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     sesSender
	appName    string
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
	log        *logger.Logger
}

// NewEmailService creates a new email service. Without a sender address
// the service is disabled and every send is a logged no-op.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appName, appBaseURL string, debug bool, log *logger.Logger) (*EmailService, error) {
	if fromEmail == "" {
		log.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{appName: appName, enabled: false, debug: debug, log: log}, nil
	}

	if debug {
		log.Debug("initializing email service", "region", awsRegion, "from_name", fromName, "app_base_url", appBaseURL)
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info("email service enabled", "region", awsRegion)
	return newEmailService(sesv2.NewFromConfig(cfg), fromEmail, fromName, appName, appBaseURL, debug, log), nil
}

func newEmailService(client sesSender, fromEmail, fromName, appName, appBaseURL string, debug bool, log *logger.Logger) *EmailService {
	return &EmailService{
		client:     client,
		appName:    appName,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
		log:        log,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendJournalReminder nudges a skater who has not journaled today
func (s *EmailService) SendJournalReminder(ctx context.Context, p *models.Profile, streak int) error {
	if !s.enabled {
		s.log.Debug("skipping reminder email (service disabled)", "owner_id", p.OwnerID)
		return nil
	}

	subject := fmt.Sprintf("Time for today's %s entry", s.appName)
	streakLine := "Start a new streak today."
	if streak > 0 {
		streakLine = fmt.Sprintf("You're on a %d-day streak. Keep it going!", streak)
	}
	link := s.appBaseURL + "/journal/new"

	textBody := fmt.Sprintf(`Hi %s,

You haven't written in your skating journal today. %s

Write today's entry: %s

---
This is an automated reminder from %s. You can turn reminders off in your profile.
`, displayName(p), streakLine, link, s.appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Hi %s,</p>
	<p>You haven't written in your skating journal today. %s</p>
	<p><a href="%s">Write today's entry</a></p>
	<p style="font-size: 12px; color: #666;">This is an automated reminder from %s. You can turn reminders off in your profile.</p>
</body>
</html>
`, html.EscapeString(displayName(p)), html.EscapeString(streakLine), link, html.EscapeString(s.appName))

	return s.sendEmail(ctx, p.Email, subject, htmlBody, textBody)
}

// SendWeeklySummary mails the week's training numbers
func (s *EmailService) SendWeeklySummary(ctx context.Context, p *models.Profile, summary progress.Summary) error {
	if !s.enabled {
		s.log.Debug("skipping weekly summary email (service disabled)", "owner_id", p.OwnerID)
		return nil
	}

	week := progress.WindowFor(summary.Today, progress.PeriodWeek)
	subject := fmt.Sprintf("Your %s week: %s to %s", s.appName, week.Start, week.End)

	lines := []string{
		fmt.Sprintf("Training: %s minutes (%s)", formatNumber(summary.Weekly.TrainingMinutes.Current), formatChange(summary.Weekly.TrainingMinutes.PercentChange)),
		fmt.Sprintf("Sessions: %s (%s)", formatNumber(summary.Weekly.Sessions.Current), formatChange(summary.Weekly.Sessions.PercentChange)),
		fmt.Sprintf("Jump attempts: %s, landing rate %s%%", formatNumber(summary.Weekly.JumpAttempts.Current), formatNumber(summary.Weekly.LandingRate.Current)),
		fmt.Sprintf("Journal entries: %s", formatNumber(summary.Weekly.JournalEntries.Current)),
		fmt.Sprintf("Current streak: %d days (best %d)", summary.CurrentStreak, summary.LongestStreak),
	}
	if wg := summary.WeeklyGoal; wg != nil {
		lines = append(lines,
			fmt.Sprintf("On-ice goal: %.1f of %.1f hours (%.0f%%)", wg.OnIceHours.Current, wg.OnIceHours.Target, wg.OnIceHours.Percent),
			fmt.Sprintf("Off-ice goal: %.0f of %.0f sessions (%.0f%%)", wg.OffIceSessions.Current, wg.OffIceSessions.Target, wg.OffIceSessions.Percent),
		)
	}

	textBody := fmt.Sprintf("Hi %s,\n\nHere is your week on the ice:\n\n- %s\n\nSee the full dashboard: %s\n",
		displayName(p), strings.Join(lines, "\n- "), s.appBaseURL)

	var items strings.Builder
	for _, l := range lines {
		items.WriteString("<li>" + html.EscapeString(l) + "</li>")
	}
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Hi %s,</p>
	<p>Here is your week on the ice:</p>
	<ul>%s</ul>
	<p><a href="%s">See the full dashboard</a></p>
</body>
</html>
`, html.EscapeString(displayName(p)), items.String(), s.appBaseURL)

	return s.sendEmail(ctx, p.Email, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	if toEmail == "" {
		return ErrNoEmail
	}

	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email %q: %w", subject, err)
	}

	if s.debug && result.MessageId != nil {
		s.log.Debug("SES message accepted", "message_id", *result.MessageId)
	}
	s.log.Info("email sent", "subject", subject)
	return nil
}

func displayName(p *models.Profile) string {
	if p.Name != "" {
		return p.Name
	}
	return "skater"
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func formatChange(pct *float64) string {
	if pct == nil {
		return "no change"
	}
	return fmt.Sprintf("%+.1f%% vs last week", *pct)
}
