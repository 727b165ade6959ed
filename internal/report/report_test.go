package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skatejournal/internal/models"
)

func rating(v int) *int { return &v }

func sampleInput() Input {
	return Input{
		Profile: &models.Profile{OwnerID: "owner-1", Name: "Mia Łukasik", SkatingLevel: "Novice", Club: "Ice Stars"},
		Entries: []models.JournalEntry{
			{Date: models.MustParseDay("2024-06-10"), Feeling: models.FeelingGood, Highlights: "Landed my first 2A", EmotionalState: rating(8)},
			{Date: models.MustParseDay("2024-06-12"), Feeling: models.FeelingTired, Challenges: strings.Repeat("Long notes about edges. ", 60)},
			{Feeling: models.FeelingOkay, Notes: "undated"},
		},
		Sessions: []models.TrainingSession{
			{Date: models.MustParseDay("2024-06-11"), Type: models.SessionOnIce, TotalDurationMinutes: 90,
				Activities: []models.SubActivity{{Name: "Jumps", DurationMinutes: 45}, {Name: "Spins", DurationMinutes: 45}}},
			{Date: models.MustParseDay("2024-06-09"), Type: models.SessionOffIce, TotalDurationMinutes: 30},
		},
		Jumps: []models.JumpAttempt{
			{Date: models.MustParseDay("2024-06-11"), JumpType: models.JumpAxel, Level: models.LevelDouble, Landed: true, Quality: 4},
			{Date: models.MustParseDay("2024-06-11"), JumpType: models.JumpAxel, Level: models.LevelDouble, Quality: 2},
		},
		Goals: []models.Goal{
			{Title: "Clean double axel", Timeframe: models.TimeframeSeason, Progress: 60},
			{Title: "Stretch daily", Timeframe: models.TimeframeWeekly, Progress: 100, Completed: true},
		},
		Today: models.MustParseDay("2024-06-13"),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer("Skate Journal").Render(&buf, sampleInput())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer("Skate Journal").Render(&buf, Input{Today: models.MustParseDay("2024-06-13")})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	in := sampleInput()
	before := sampleInput()

	require.NoError(t, NewRenderer("Skate Journal").Render(&bytes.Buffer{}, in))

	assert.Equal(t, before, in)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Mia Chen", want: "mia-chen"},
		{input: "  Anna--Lee!! ", want: "anna-lee"},
		{input: "Skate Journal", want: "skate-journal"},
		{input: "Zoë 2", want: "zo-2"},
		{input: "", want: "skater"},
		{input: "***", want: "skater"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestFilename(t *testing.T) {
	day := models.MustParseDay("2024-06-13")

	assert.Equal(t, "skate-journal-mia-chen-2024-06-13.pdf", Filename("Skate Journal", "Mia Chen", day))
	assert.Equal(t, "skate-journal-skater-2024-06-13.pdf", NewRenderer("Skate Journal").Filename(Input{Today: day}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	got := truncate(strings.Repeat("x", 100), 20)
	assert.Len(t, got, 10)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestChangeRoundsForDisplay(t *testing.T) {
	third := -100.0 / 3.0
	up := 100.0

	assert.Equal(t, "no change", change(nil))
	assert.Equal(t, "-33.3%", change(&third))
	assert.Equal(t, "+100.0%", change(&up))
}
