// Package validation checks user input at the API boundary. Stored data
// is never rejected on read.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"skatejournal/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

func requireDay(field string, d models.Day) error {
	if d.IsZero() {
		return ValidationError{Field: field, Message: "a valid date (YYYY-MM-DD) is required"}
	}
	return nil
}

func optionalRating(field string, v *int) error {
	if v != nil && (*v < 1 || *v > 10) {
		return ValidationError{Field: field, Message: "must be between 1 and 10"}
	}
	return nil
}

// ValidateJournalEntry checks a new journal entry
func ValidateJournalEntry(e *models.JournalEntry) error {
	if err := requireDay("date", e.Date); err != nil {
		return err
	}
	if !e.Feeling.Valid() {
		return ValidationError{Field: "feeling", Message: "unknown feeling"}
	}
	if err := optionalRating("emotionalState", e.EmotionalState); err != nil {
		return err
	}
	if err := optionalRating("confidenceLevel", e.ConfidenceLevel); err != nil {
		return err
	}
	return optionalRating("focusLevel", e.FocusLevel)
}

// ValidateTrainingSession checks a new training session
func ValidateTrainingSession(s *models.TrainingSession) error {
	if err := requireDay("date", s.Date); err != nil {
		return err
	}
	if !s.Type.Valid() {
		return ValidationError{Field: "type", Message: "must be on-ice or off-ice"}
	}
	if s.TotalDurationMinutes < 0 {
		return ValidationError{Field: "totalDurationMinutes", Message: "must not be negative"}
	}
	for _, a := range s.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return ValidationError{Field: "activities", Message: "activity name is required"}
		}
		if a.DurationMinutes < 0 {
			return ValidationError{Field: "activities", Message: "activity duration must not be negative"}
		}
	}
	return nil
}

// ValidateJumpAttempt checks a new jump attempt
func ValidateJumpAttempt(j *models.JumpAttempt) error {
	if err := requireDay("date", j.Date); err != nil {
		return err
	}
	if !j.JumpType.Valid() {
		return ValidationError{Field: "jumpType", Message: "unknown jump"}
	}
	if !j.Level.Valid() {
		return ValidationError{Field: "level", Message: "must be single, double, triple or quad"}
	}
	if j.Quality < 1 || j.Quality > 5 {
		return ValidationError{Field: "quality", Message: "must be between 1 and 5"}
	}
	return nil
}

// ValidateGoal checks a new goal
func ValidateGoal(g *models.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if !g.Timeframe.Valid() {
		return ValidationError{Field: "timeframe", Message: "must be weekly, monthly or season"}
	}
	return ValidateProgress(g.Progress)
}

// ValidateProgress checks a goal progress value
func ValidateProgress(p int) error {
	if p < 0 || p > 100 {
		return ValidationError{Field: "progress", Message: "must be between 0 and 100"}
	}
	return nil
}

// ValidateWeeklyGoal checks weekly goal targets
func ValidateWeeklyGoal(g *models.WeeklyGoal) error {
	if err := requireDay("weekStart", g.WeekStart); err != nil {
		return err
	}
	if g.OnIceHoursTarget < 0 {
		return ValidationError{Field: "onIceHoursTarget", Message: "must not be negative"}
	}
	if g.OffIceSessionsTarget < 0 {
		return ValidationError{Field: "offIceSessionsTarget", Message: "must not be negative"}
	}
	for _, jt := range g.JumpTargets {
		if !jt.JumpType.Valid() || !jt.Level.Valid() {
			return ValidationError{Field: "jumpTargets", Message: "unknown jump or level"}
		}
		if jt.TargetAttempts < 0 || jt.TargetLanded < 0 {
			return ValidationError{Field: "jumpTargets", Message: "targets must not be negative"}
		}
	}
	return nil
}

// ValidateProfile checks profile edits
func ValidateProfile(p *models.Profile) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if p.Email != "" {
		if err := ValidateEmail(p.Email); err != nil {
			return err
		}
	}
	if p.TimeZone != "" {
		if _, err := time.LoadLocation(p.TimeZone); err != nil {
			return ValidationError{Field: "timeZone", Message: "unknown time zone"}
		}
	}
	if p.ReminderTime != "" {
		if _, err := time.Parse("15:04", p.ReminderTime); err != nil {
			return ValidationError{Field: "reminderTime", Message: "must be HH:MM"}
		}
	}
	if p.ReminderEnabled && p.ReminderTime == "" {
		return ValidationError{Field: "reminderTime", Message: "required when reminders are enabled"}
	}
	return nil
}
