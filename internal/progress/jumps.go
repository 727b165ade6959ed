package progress

import (
	"math"
	"sort"

	"skatejournal/internal/models"
)

// JumpKey groups attempts of the same jump at the same level
type JumpKey struct {
	JumpType models.JumpType
	Level    models.JumpLevel
}

// JumpStats summarizes the attempts of one jump and level
type JumpStats struct {
	JumpType       models.JumpType  `json:"jumpType"`
	Level          models.JumpLevel `json:"level"`
	Attempted      int              `json:"attempted"`
	Landed         int              `json:"landed"`
	SuccessRate    int              `json:"successRate"`
	AverageQuality float64          `json:"avgQuality"`
}

// SuccessRate returns landed/attempted as a rounded percentage, 0 when
// nothing was attempted
func SuccessRate(landed, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	return int(math.Round(float64(landed) / float64(attempted) * 100))
}

// JumpStatistics groups attempts by (jump, level). Average quality covers
// every attempt in the group, landed or not. Groups are ordered by jump
// then level; attempts without a date are skipped.
func JumpStatistics(attempts []models.JumpAttempt) []JumpStats {
	type acc struct {
		attempted, landed, quality int
	}
	groups := make(map[JumpKey]*acc)
	for _, a := range attempts {
		if a.ActivityDay().IsZero() {
			continue
		}
		key := JumpKey{JumpType: a.JumpType, Level: a.Level}
		g, ok := groups[key]
		if !ok {
			g = &acc{}
			groups[key] = g
		}
		g.attempted++
		g.quality += a.Quality
		if a.Landed {
			g.landed++
		}
	}

	stats := make([]JumpStats, 0, len(groups))
	for key, g := range groups {
		avg := 0.0
		if g.attempted > 0 {
			avg = float64(g.quality) / float64(g.attempted)
		}
		stats = append(stats, JumpStats{
			JumpType:       key.JumpType,
			Level:          key.Level,
			Attempted:      g.attempted,
			Landed:         g.landed,
			SuccessRate:    SuccessRate(g.landed, g.attempted),
			AverageQuality: avg,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		ri, rj := stats[i].JumpType.Rank(), stats[j].JumpType.Rank()
		if ri != rj {
			return ri < rj
		}
		if stats[i].JumpType != stats[j].JumpType {
			return stats[i].JumpType < stats[j].JumpType
		}
		return stats[i].Level.Rank() < stats[j].Level.Rank()
	})
	return stats
}
