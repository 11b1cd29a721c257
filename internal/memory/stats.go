package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Best is a personal record that may not have been set yet.
// Unset compares as worse than any real value and is stored as JSON null.
type Best struct {
	Value int
	Set   bool
}

// BestOf returns a set record with the given value.
func BestOf(v int) Best {
	return Best{Value: v, Set: true}
}

// Improves reports whether v would beat the record.
func (b Best) Improves(v int) bool {
	return !b.Set || v < b.Value
}

// String returns the value, or "N/A" when unset.
func (b Best) String() string {
	if !b.Set {
		return "N/A"
	}
	return strconv.Itoa(b.Value)
}

// TimeString formats the record as MM:SS seconds, or "N/A" when unset.
func (b Best) TimeString() string {
	if !b.Set {
		return "N/A"
	}
	return FormatSeconds(b.Value)
}

// MarshalJSON encodes an unset record as null.
func (b Best) MarshalJSON() ([]byte, error) {
	if !b.Set {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(b.Value), 10), nil
}

// UnmarshalJSON accepts null (unset) or a number. Fractional values are floored.
func (b *Best) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = Best{}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("memory: best record: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		*b = Best{}
		return nil
	}

	*b = BestOf(int(math.Floor(f)))
	return nil
}

// Achievement identifies a one-time unlock.
type Achievement string

const (
	AchievementFirstWin         Achievement = "firstWin"
	AchievementSpeedDemon       Achievement = "speedDemon"
	AchievementPerfectMemory    Achievement = "perfectMemory"
	AchievementThemeExplorer    Achievement = "themeExplorer"
	AchievementDifficultyMaster Achievement = "difficultyMaster"
)

// AllAchievements returns every achievement in evaluation order.
func AllAchievements() []Achievement {
	return []Achievement{
		AchievementFirstWin,
		AchievementSpeedDemon,
		AchievementPerfectMemory,
		AchievementThemeExplorer,
		AchievementDifficultyMaster,
	}
}

// Title returns the display name shown when the achievement unlocks.
func (a Achievement) Title() string {
	switch a {
	case AchievementFirstWin:
		return "First Victory!"
	case AchievementSpeedDemon:
		return "Speed Demon!"
	case AchievementPerfectMemory:
		return "Perfect Memory!"
	case AchievementThemeExplorer:
		return "Theme Explorer!"
	case AchievementDifficultyMaster:
		return "Difficulty Master!"
	default:
		return string(a)
	}
}

// Description explains the unlock condition.
func (a Achievement) Description() string {
	switch a {
	case AchievementFirstWin:
		return "Complete a game"
	case AchievementSpeedDemon:
		return "Complete a game in under 30 seconds"
	case AchievementPerfectMemory:
		return "Complete a game with the minimum possible moves"
	case AchievementThemeExplorer:
		return "Complete a game with every theme"
	case AchievementDifficultyMaster:
		return "Complete a game on every difficulty"
	default:
		return ""
	}
}

// Achievements holds the unlock flags. Flags only ever go from false to true.
type Achievements struct {
	FirstWin         bool `json:"firstWin"`
	SpeedDemon       bool `json:"speedDemon"`
	PerfectMemory    bool `json:"perfectMemory"`
	ThemeExplorer    bool `json:"themeExplorer"`
	DifficultyMaster bool `json:"difficultyMaster"`
}

// Has reports whether a is unlocked.
func (a Achievements) Has(x Achievement) bool {
	if p := a.flag(x); p != nil {
		return *p
	}
	return false
}

// Unlocked returns the unlocked achievements in evaluation order.
func (a Achievements) Unlocked() []Achievement {
	var out []Achievement
	for _, x := range AllAchievements() {
		if a.Has(x) {
			out = append(out, x)
		}
	}
	return out
}

func (a *Achievements) flag(x Achievement) *bool {
	switch x {
	case AchievementFirstWin:
		return &a.FirstWin
	case AchievementSpeedDemon:
		return &a.SpeedDemon
	case AchievementPerfectMemory:
		return &a.PerfectMemory
	case AchievementThemeExplorer:
		return &a.ThemeExplorer
	case AchievementDifficultyMaster:
		return &a.DifficultyMaster
	default:
		return nil
	}
}

// PlayerStats is the cross-session record of bests and achievements.
// Field names match the persisted JSON blob.
type PlayerStats struct {
	GamesPlayed           int                 `json:"gamesPlayed"`
	BestTimes             map[Difficulty]Best `json:"bestTimes"`
	BestMoves             map[Difficulty]Best `json:"bestMoves"`
	Achievements          Achievements        `json:"achievements"`
	ThemesPlayed          []string            `json:"themesPlayed"`
	DifficultiesCompleted []Difficulty        `json:"difficultiesCompleted"`
}

// DefaultStats returns fresh stats: no games, every best unset, nothing unlocked.
func DefaultStats() PlayerStats {
	s := PlayerStats{
		BestTimes:             make(map[Difficulty]Best),
		BestMoves:             make(map[Difficulty]Best),
		ThemesPlayed:          []string{},
		DifficultiesCompleted: []Difficulty{},
	}
	for _, d := range Difficulties() {
		s.BestTimes[d] = Best{}
		s.BestMoves[d] = Best{}
	}
	return s
}

// Clone returns a deep copy.
func (s PlayerStats) Clone() PlayerStats {
	c := s
	c.BestTimes = make(map[Difficulty]Best, len(s.BestTimes))
	for k, v := range s.BestTimes {
		c.BestTimes[k] = v
	}
	c.BestMoves = make(map[Difficulty]Best, len(s.BestMoves))
	for k, v := range s.BestMoves {
		c.BestMoves[k] = v
	}
	c.ThemesPlayed = append([]string{}, s.ThemesPlayed...)
	c.DifficultiesCompleted = append([]Difficulty{}, s.DifficultiesCompleted...)
	return c
}

// Completion is what the stats updater needs to know about a finished session.
type Completion struct {
	Difficulty Difficulty
	Theme      string
	Elapsed    time.Duration
	Moves      int
	TotalPairs int
}

// AchievementRules parameterise achievement evaluation.
type AchievementRules struct {
	// SpeedDemon is the (exclusive) completion time limit, compared in whole seconds.
	SpeedDemon time.Duration

	// Themes lists every defined theme, for theme-explorer.
	Themes []string

	// Difficulties lists every defined difficulty, for difficulty-master.
	Difficulties []Difficulty
}

// Record folds a completed session into the stats and returns the
// achievements it newly unlocked. Call it exactly once per completed session.
func (s *PlayerStats) Record(c Completion, rules AchievementRules) []Achievement {
	if s.BestTimes == nil {
		s.BestTimes = make(map[Difficulty]Best)
	}
	if s.BestMoves == nil {
		s.BestMoves = make(map[Difficulty]Best)
	}

	secs := int(c.Elapsed / time.Second)

	s.GamesPlayed++

	if s.BestTimes[c.Difficulty].Improves(secs) {
		s.BestTimes[c.Difficulty] = BestOf(secs)
	}
	if s.BestMoves[c.Difficulty].Improves(c.Moves) {
		s.BestMoves[c.Difficulty] = BestOf(c.Moves)
	}

	if !containsString(s.ThemesPlayed, c.Theme) {
		s.ThemesPlayed = append(s.ThemesPlayed, c.Theme)
	}
	if !containsDifficulty(s.DifficultiesCompleted, c.Difficulty) {
		s.DifficultiesCompleted = append(s.DifficultiesCompleted, c.Difficulty)
	}

	var unlocked []Achievement
	try := func(a Achievement, cond bool) {
		flag := s.Achievements.flag(a)
		if cond && !*flag {
			*flag = true
			unlocked = append(unlocked, a)
		}
	}

	try(AchievementFirstWin, true)
	try(AchievementSpeedDemon, secs < int(rules.SpeedDemon/time.Second))
	try(AchievementPerfectMemory, c.Moves == c.TotalPairs)
	try(AchievementThemeExplorer, len(rules.Themes) > 0 && coversStrings(s.ThemesPlayed, rules.Themes))
	try(AchievementDifficultyMaster, len(rules.Difficulties) > 0 && coversDifficulties(s.DifficultiesCompleted, rules.Difficulties))

	return unlocked
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsDifficulty(list []Difficulty, v Difficulty) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func coversStrings(have, want []string) bool {
	for _, w := range want {
		if !containsString(have, w) {
			return false
		}
	}
	return true
}

func coversDifficulties(have, want []Difficulty) bool {
	for _, w := range want {
		if !containsDifficulty(have, w) {
			return false
		}
	}
	return true
}
