// Package report renders a skater's journal and training history as a
// paginated PDF.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"skatejournal/internal/models"
	"skatejournal/internal/progress"
)

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	contentWide = 180.0
)

// Input is everything that goes into a report. Render never modifies it.
type Input struct {
	Profile  *models.Profile
	Entries  []models.JournalEntry
	Sessions []models.TrainingSession
	Jumps    []models.JumpAttempt
	Goals    []models.Goal
	Today    models.Day
}

// Renderer builds PDF reports branded with the application name
type Renderer struct {
	appName string
}

// NewRenderer creates a new renderer
func NewRenderer(appName string) *Renderer {
	return &Renderer{appName: appName}
}

// Filename returns "<app>-<slugified-name>-<yyyy-MM-dd>.pdf"
func Filename(app, name string, day models.Day) string {
	return fmt.Sprintf("%s-%s-%s.pdf", Slugify(app), Slugify(name), day)
}

// Slugify lowercases s and joins its letters and digits with single
// hyphens. An empty result becomes "skater".
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "skater"
	}
	return b.String()
}

// Filename returns the download name of in's report
func (r *Renderer) Filename(in Input) string {
	name := ""
	if in.Profile != nil {
		name = in.Profile.Name
	}
	return Filename(r.appName, name, in.Today)
}

// Render writes the report for in to w
func (r *Renderer) Render(w io.Writer, in Input) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if pdf.Err() {
		pdf.ClearError()
		tr = latin1
	}
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+5)
	pdf.SetTitle(tr(r.appName+" report"), false)
	pdf.SetCreator(r.appName, false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - page %d/{nb}", in.Today, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	p := &page{pdf: pdf, tr: tr}
	r.header(p, in)

	snap := progress.Snapshot{
		Profile:  in.Profile,
		Entries:  in.Entries,
		Sessions: in.Sessions,
		Jumps:    in.Jumps,
		Goals:    in.Goals,
	}
	summary := progress.Summarize(snap, in.Today)
	summarySection(p, summary)
	journalSection(p, in.Entries)
	sessionSection(p, in.Sessions)
	jumpSection(p, summary.Jumps)
	goalSection(p, in.Goals)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// page bundles the document with its text translator
type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p *page) heading(text string) {
	p.pdf.Ln(4)
	p.pdf.SetFont("Helvetica", "B", 13)
	p.pdf.CellFormat(0, 8, p.tr(text), "B", 1, "L", false, 0, "")
	p.pdf.Ln(2)
}

func (p *page) line(text string) {
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.MultiCell(0, lineHeight, p.tr(text), "", "L", false)
}

func (p *page) placeholder(text string) {
	p.pdf.SetFont("Helvetica", "I", 10)
	p.pdf.SetTextColor(120, 120, 120)
	p.pdf.MultiCell(0, lineHeight, p.tr(text), "", "L", false)
	p.pdf.SetTextColor(0, 0, 0)
}

func (p *page) table(widths []float64, header []string, rows [][]string) {
	p.pdf.SetFont("Helvetica", "B", 9)
	p.pdf.SetFillColor(230, 236, 245)
	for i, h := range header {
		p.pdf.CellFormat(widths[i], 7, p.tr(h), "1", 0, "L", true, 0, "")
	}
	p.pdf.Ln(-1)

	p.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			p.pdf.CellFormat(widths[i], 6, p.tr(truncate(cell, widths[i])), "1", 0, "L", false, 0, "")
		}
		p.pdf.Ln(-1)
	}
}

func (r *Renderer) header(p *page, in Input) {
	p.pdf.SetFont("Helvetica", "B", 18)
	p.pdf.CellFormat(0, 10, p.tr(r.appName+" training report"), "", 1, "L", false, 0, "")

	prof := in.Profile
	if prof == nil {
		prof = &models.Profile{}
	}
	name := prof.Name
	if name == "" {
		name = "Unnamed skater"
	}
	p.pdf.SetFont("Helvetica", "", 11)
	p.pdf.CellFormat(0, 7, p.tr(name), "", 1, "L", false, 0, "")

	var details []string
	if prof.SkatingLevel != "" {
		details = append(details, "Level: "+prof.SkatingLevel)
	}
	if prof.Club != "" {
		details = append(details, "Club: "+prof.Club)
	}
	if prof.Coach != "" {
		details = append(details, "Coach: "+prof.Coach)
	}
	details = append(details, "Generated: "+in.Today.String())
	p.line(strings.Join(details, "   "))
}

func summarySection(p *page, s progress.Summary) {
	p.heading("Summary")
	p.line(fmt.Sprintf("Current streak: %d days   Longest streak: %d days   Active days: %d",
		s.CurrentStreak, s.LongestStreak, s.Totals.ActiveDays))
	p.line(fmt.Sprintf("Journal entries: %d   Training sessions: %d (%.1f hours)   Jumps landed: %d of %d",
		s.Totals.JournalEntries, s.Totals.TrainingSessions, s.Totals.TrainingHours, s.Totals.JumpsLanded, s.Totals.JumpAttempts))
	p.line(fmt.Sprintf("This week: %.0f training minutes (%s)   This month: %.0f training minutes (%s)",
		s.Weekly.TrainingMinutes.Current, change(s.Weekly.TrainingMinutes.PercentChange),
		s.Monthly.TrainingMinutes.Current, change(s.Monthly.TrainingMinutes.PercentChange)))
}

func journalSection(p *page, entries []models.JournalEntry) {
	p.heading("Journal entries")
	sorted := newestFirst(entries)
	if len(sorted) == 0 {
		p.placeholder("No journal entries yet.")
		return
	}
	for _, e := range sorted {
		p.pdf.SetFont("Helvetica", "B", 10)
		p.pdf.CellFormat(0, lineHeight, p.tr(fmt.Sprintf("%s - feeling %s%s", e.Date, e.Feeling, ratings(e))), "", 1, "L", false, 0, "")
		for _, part := range []struct{ label, text string }{
			{"Highlights", e.Highlights},
			{"Challenges", e.Challenges},
			{"Grateful for", e.Gratitude},
			{"Notes", e.Notes},
		} {
			if strings.TrimSpace(part.text) != "" {
				p.line(part.label + ": " + part.text)
			}
		}
		p.pdf.Ln(2)
	}
}

func sessionSection(p *page, sessions []models.TrainingSession) {
	p.heading("Training sessions")
	sorted := newestFirst(sessions)
	if len(sorted) == 0 {
		p.placeholder("No training sessions logged yet.")
		return
	}
	rows := make([][]string, 0, len(sorted))
	for _, s := range sorted {
		names := make([]string, 0, len(s.Activities))
		for _, a := range s.Activities {
			names = append(names, fmt.Sprintf("%s (%d min)", a.Name, a.DurationMinutes))
		}
		rows = append(rows, []string{s.Date.String(), string(s.Type), fmt.Sprintf("%d", s.TotalDurationMinutes), strings.Join(names, ", ")})
	}
	p.table([]float64{28, 22, 22, contentWide - 72}, []string{"Date", "Type", "Minutes", "Activities"}, rows)
}

func jumpSection(p *page, stats []progress.JumpStats) {
	p.heading("Jump statistics")
	if len(stats) == 0 {
		p.placeholder("No jump attempts logged yet.")
		return
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", s.Level, s.JumpType),
			fmt.Sprintf("%d", s.Attempted),
			fmt.Sprintf("%d", s.Landed),
			fmt.Sprintf("%d%%", s.SuccessRate),
			fmt.Sprintf("%.1f", s.AverageQuality),
		})
	}
	p.table([]float64{60, 30, 30, 30, 30}, []string{"Jump", "Attempted", "Landed", "Success", "Avg quality"}, rows)
}

func goalSection(p *page, goals []models.Goal) {
	p.heading("Goals")
	if len(goals) == 0 {
		p.placeholder("No goals set yet.")
		return
	}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		status := "open"
		if g.Completed {
			status = "completed"
		}
		target := "-"
		if !g.TargetDate.IsZero() {
			target = g.TargetDate.String()
		}
		rows = append(rows, []string{g.Title, string(g.Timeframe), fmt.Sprintf("%d%%", g.Progress), status, target})
	}
	p.table([]float64{70, 25, 25, 30, 30}, []string{"Goal", "Timeframe", "Progress", "Status", "Target"}, rows)
}

// newestFirst returns a sorted copy of the dated records, newest first
func newestFirst[T progress.Dated](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !r.ActivityDay().IsZero() {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ActivityDay() > out[j].ActivityDay() })
	return out
}

func ratings(e models.JournalEntry) string {
	var parts []string
	if e.EmotionalState != nil {
		parts = append(parts, fmt.Sprintf("mood %d/10", *e.EmotionalState))
	}
	if e.ConfidenceLevel != nil {
		parts = append(parts, fmt.Sprintf("confidence %d/10", *e.ConfidenceLevel))
	}
	if e.FocusLevel != nil {
		parts = append(parts, fmt.Sprintf("focus %d/10", *e.FocusLevel))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func change(pct *float64) string {
	if pct == nil {
		return "no change"
	}
	return fmt.Sprintf("%+.1f%%", *pct)
}

// latin1 maps text onto the core fonts' single-byte encoding
func latin1(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 256 {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}

// truncate shortens text to roughly fit a table cell of width mm
func truncate(text string, width float64) string {
	limit := int(width) / 2
	runes := []rune(text)
	if len(runes) <= limit || limit < 4 {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
