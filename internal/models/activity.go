package models

import "time"

// Feeling is the overall mood recorded on a journal entry
type Feeling string

const (
	FeelingGreat      Feeling = "great"
	FeelingGood       Feeling = "good"
	FeelingOkay       Feeling = "okay"
	FeelingTired      Feeling = "tired"
	FeelingFrustrated Feeling = "frustrated"
	FeelingAnxious    Feeling = "anxious"
)

// Valid reports whether f is a known feeling
func (f Feeling) Valid() bool {
	switch f {
	case FeelingGreat, FeelingGood, FeelingOkay, FeelingTired, FeelingFrustrated, FeelingAnxious:
		return true
	}
	return false
}

// SessionType distinguishes on-ice from off-ice training
type SessionType string

const (
	SessionOnIce  SessionType = "on-ice"
	SessionOffIce SessionType = "off-ice"
)

// Valid reports whether t is a known session type
func (t SessionType) Valid() bool {
	return t == SessionOnIce || t == SessionOffIce
}

// JumpType is one of the six figure skating jumps
type JumpType string

const (
	JumpToeLoop JumpType = "toe-loop"
	JumpSalchow JumpType = "salchow"
	JumpLoop    JumpType = "loop"
	JumpFlip    JumpType = "flip"
	JumpLutz    JumpType = "lutz"
	JumpAxel    JumpType = "axel"
)

// JumpTypes lists the jumps in ascending base value order
var JumpTypes = []JumpType{JumpToeLoop, JumpSalchow, JumpLoop, JumpFlip, JumpLutz, JumpAxel}

// Rank returns the jump's position in JumpTypes, or -1 if unknown
func (j JumpType) Rank() int {
	for i, jt := range JumpTypes {
		if jt == j {
			return i
		}
	}
	return -1
}

// Valid reports whether j is a known jump
func (j JumpType) Valid() bool {
	return j.Rank() >= 0
}

// JumpLevel is the number of rotations of a jump
type JumpLevel string

const (
	LevelSingle JumpLevel = "single"
	LevelDouble JumpLevel = "double"
	LevelTriple JumpLevel = "triple"
	LevelQuad   JumpLevel = "quad"
)

// JumpLevels lists levels from fewest to most rotations
var JumpLevels = []JumpLevel{LevelSingle, LevelDouble, LevelTriple, LevelQuad}

// Rank returns the level's position in JumpLevels, or -1 if unknown
func (l JumpLevel) Rank() int {
	for i, lv := range JumpLevels {
		if lv == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is a known level
func (l JumpLevel) Valid() bool {
	return l.Rank() >= 0
}

// JournalEntry is a skater's daily journal
type JournalEntry struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Date            Day       `json:"date"`
	Feeling         Feeling   `json:"feeling"`
	Highlights      string    `json:"highlights,omitempty"`
	Challenges      string    `json:"challenges,omitempty"`
	Gratitude       string    `json:"gratitude,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	EmotionalState  *int      `json:"emotionalState,omitempty"`
	ConfidenceLevel *int      `json:"confidenceLevel,omitempty"`
	FocusLevel      *int      `json:"focusLevel,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ActivityDay returns the calendar day the entry was written for
func (e JournalEntry) ActivityDay() Day { return e.Date }

// SubActivity is a named block within a training session
type SubActivity struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// TrainingSession is an on-ice or off-ice practice
type TrainingSession struct {
	ID                   string        `json:"id"`
	OwnerID              string        `json:"ownerId"`
	Date                 Day           `json:"date"`
	Type                 SessionType   `json:"type"`
	TotalDurationMinutes int           `json:"totalDurationMinutes"`
	Activities           []SubActivity `json:"activities"`
	Notes                string        `json:"notes,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// ActivityDay returns the calendar day of the session
func (s TrainingSession) ActivityDay() Day { return s.Date }

// JumpAttempt is a single logged jump
type JumpAttempt struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Date      Day       `json:"date"`
	JumpType  JumpType  `json:"jumpType"`
	Level     JumpLevel `json:"level"`
	Landed    bool      `json:"landed"`
	Quality   int       `json:"quality"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityDay returns the calendar day of the attempt
func (j JumpAttempt) ActivityDay() Day { return j.Date }
