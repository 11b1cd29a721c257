package memory

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func allRules() AchievementRules {
	return AchievementRules{
		SpeedDemon:   DefaultSpeedDemon,
		Themes:       []string{"a", "b"},
		Difficulties: Difficulties(),
	}
}

func TestRecordFirstGame(t *testing.T) {
	s := DefaultStats()
	unlocked := s.Record(Completion{
		Difficulty: Easy,
		Theme:      "a",
		Elapsed:    45 * time.Second,
		Moves:      9,
		TotalPairs: 6,
	}, allRules())

	if len(unlocked) != 1 || unlocked[0] != AchievementFirstWin {
		t.Errorf("unlocked = %v, want [firstWin]", unlocked)
	}
	if s.GamesPlayed != 1 || s.BestTimes[Easy] != BestOf(45) || s.BestMoves[Easy] != BestOf(9) {
		t.Errorf("stats = %+v", s)
	}

	// Achievements unlock once.
	unlocked = s.Record(Completion{Difficulty: Easy, Theme: "a", Elapsed: time.Minute, Moves: 12, TotalPairs: 6}, allRules())
	if len(unlocked) != 0 {
		t.Errorf("second game unlocked %v", unlocked)
	}
	if s.BestTimes[Easy] != BestOf(45) || s.BestMoves[Easy] != BestOf(9) {
		t.Error("worse results must not replace bests")
	}
}

func TestRecordThemesAndDifficulties(t *testing.T) {
	s := DefaultStats()
	rules := allRules()

	s.Record(Completion{Difficulty: Easy, Theme: "a", Elapsed: time.Minute, Moves: 10, TotalPairs: 6}, rules)
	s.Record(Completion{Difficulty: Easy, Theme: "a", Elapsed: time.Minute, Moves: 10, TotalPairs: 6}, rules)
	if len(s.ThemesPlayed) != 1 || len(s.DifficultiesCompleted) != 1 {
		t.Errorf("duplicates recorded: %v %v", s.ThemesPlayed, s.DifficultiesCompleted)
	}

	got := s.Record(Completion{Difficulty: Medium, Theme: "b", Elapsed: time.Minute, Moves: 10, TotalPairs: 8}, rules)
	if len(got) != 1 || got[0] != AchievementThemeExplorer {
		t.Errorf("unlocked = %v, want [themeExplorer]", got)
	}

	got = s.Record(Completion{Difficulty: Hard, Theme: "b", Elapsed: time.Minute, Moves: 12, TotalPairs: 10}, rules)
	if len(got) != 1 || got[0] != AchievementDifficultyMaster {
		t.Errorf("unlocked = %v, want [difficultyMaster]", got)
	}
}

func TestRecordEmptyCoverageListsNeverUnlock(t *testing.T) {
	s := DefaultStats()
	s.Record(Completion{Difficulty: Easy, Theme: "a", Elapsed: time.Minute, Moves: 10, TotalPairs: 6}, AchievementRules{SpeedDemon: DefaultSpeedDemon})
	if s.Achievements.ThemeExplorer || s.Achievements.DifficultyMaster {
		t.Error("coverage achievements need a non-empty list")
	}
}

func TestBestJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Best
	}{
		{"null", Best{}},
		{"12", BestOf(12)},
		{"12.9", BestOf(12)},
		{"-3", Best{}},
		{"1e300", Best{}},
	}

	for _, tt := range tests {
		var b Best
		if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if b != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, b, tt.want)
		}
	}

	var b Best
	if err := json.Unmarshal([]byte(`"fast"`), &b); err == nil {
		t.Error("string best should fail to decode")
	}

	out, _ := json.Marshal(map[string]Best{"easy": {}, "hard": BestOf(7)})
	if string(out) != `{"easy":null,"hard":7}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestBestFormatting(t *testing.T) {
	if (Best{}).String() != "N/A" || (Best{}).TimeString() != "N/A" {
		t.Error("unset best should print N/A")
	}
	if BestOf(75).TimeString() != "01:15" || BestOf(75).String() != "75" {
		t.Errorf("got %s / %s", BestOf(75).TimeString(), BestOf(75).String())
	}
	if !(Best{}).Improves(1_000_000) || BestOf(10).Improves(10) || !BestOf(10).Improves(9) {
		t.Error("Improves comparison wrong")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewStatsRepo(kv, "")

	s := DefaultStats()
	s.Record(Completion{Difficulty: Hard, Theme: "space", Elapsed: 95 * time.Second, Moves: 14, TotalPairs: 10}, allRules())

	if err := repo.Save(s); err != nil {
		t.Fatal(err)
	}
	got, found, err := repo.Load()
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}

	if got.GamesPlayed != 1 || got.BestTimes[Hard] != BestOf(95) || got.BestMoves[Hard] != BestOf(14) {
		t.Errorf("round trip = %+v", got)
	}
	if got.BestTimes[Easy].Set || got.BestMoves[Medium].Set {
		t.Error("unset bests must survive as unset")
	}
	if !got.Achievements.FirstWin || got.Achievements.SpeedDemon {
		t.Errorf("achievements = %+v", got.Achievements)
	}
	if len(got.ThemesPlayed) != 1 || got.ThemesPlayed[0] != "space" {
		t.Errorf("themes = %v", got.ThemesPlayed)
	}
}

func TestSavedLayout(t *testing.T) {
	kv := NewMemoryKV()
	if err := NewStatsRepo(kv, "").Save(DefaultStats()); err != nil {
		t.Fatal(err)
	}
	raw, ok, _ := kv.Get(DefaultStatsKey)
	if !ok {
		t.Fatalf("nothing stored under %q", DefaultStatsKey)
	}

	for _, key := range []string{
		`"gamesPlayed":0`,
		`"bestTimes":{`,
		`"easy":null`,
		`"bestMoves":{`,
		`"achievements":{"firstWin":false`,
		`"themesPlayed":[]`,
		`"difficultiesCompleted":[]`,
	} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("stored blob %s missing %s", raw, key)
		}
	}
}

func TestLoadAbsentAndCorrupt(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewStatsRepo(kv, "custom")
	if repo.Key != "custom" {
		t.Fatalf("Key = %q", repo.Key)
	}

	s, found, err := repo.Load()
	if err != nil || found || s.GamesPlayed != 0 || s.BestTimes == nil {
		t.Errorf("absent: %+v found=%v err=%v", s, found, err)
	}

	_ = kv.Put("custom", []byte(`[1,2,3]`))
	s, found, err = repo.Load()
	if !errors.Is(err, ErrCorruptStats) || found || s.GamesPlayed != 0 {
		t.Errorf("corrupt: found=%v err=%v", found, err)
	}
}

func TestMergePartial(t *testing.T) {
	tests := []struct {
		name  string
		blob  string
		check func(t *testing.T, s PlayerStats)
	}{
		{
			name: "empty object",
			blob: `{}`,
			check: func(t *testing.T, s PlayerStats) {
				if s.GamesPlayed != 0 || len(s.BestTimes) != 3 || s.ThemesPlayed == nil {
					t.Errorf("defaults not kept: %+v", s)
				}
			},
		},
		{
			name: "only games played",
			blob: `{"gamesPlayed":5}`,
			check: func(t *testing.T, s PlayerStats) {
				if s.GamesPlayed != 5 || s.BestTimes[Easy].Set {
					t.Errorf("got %+v", s)
				}
			},
		},
		{
			name: "partial bests",
			blob: `{"bestTimes":{"easy":40,"medium":null,"legendary":1},"bestMoves":{"hard":12}}`,
			check: func(t *testing.T, s PlayerStats) {
				if s.BestTimes[Easy] != BestOf(40) || s.BestTimes[Medium].Set || s.BestTimes[Hard].Set {
					t.Errorf("bestTimes = %v", s.BestTimes)
				}
				if _, ok := s.BestTimes["legendary"]; ok {
					t.Error("unknown difficulty must be dropped")
				}
				if s.BestMoves[Hard] != BestOf(12) || s.BestMoves[Easy].Set {
					t.Errorf("bestMoves = %v", s.BestMoves)
				}
			},
		},
		{
			name: "partial achievements",
			blob: `{"achievements":{"speedDemon":true,"unknown":true}}`,
			check: func(t *testing.T, s PlayerStats) {
				if !s.Achievements.SpeedDemon || s.Achievements.FirstWin {
					t.Errorf("achievements = %+v", s.Achievements)
				}
			},
		},
		{
			name: "sanitised lists",
			blob: `{"gamesPlayed":-2,"themesPlayed":["space","space",""],"difficultiesCompleted":["easy","easy","extreme"]}`,
			check: func(t *testing.T, s PlayerStats) {
				if s.GamesPlayed != 0 {
					t.Errorf("negative games played kept: %d", s.GamesPlayed)
				}
				if len(s.ThemesPlayed) != 1 || len(s.DifficultiesCompleted) != 1 {
					t.Errorf("lists = %v %v", s.ThemesPlayed, s.DifficultiesCompleted)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeStats([]byte(tt.blob))
			if err != nil {
				t.Fatalf("DecodeStats: %v", err)
			}
			tt.check(t, Merge(DefaultStats(), p))
		})
	}
}

func TestMergeDoesNotModifyDefaults(t *testing.T) {
	defaults := DefaultStats()
	p, _ := DecodeStats([]byte(`{"bestTimes":{"easy":10},"themesPlayed":["a"]}`))
	Merge(defaults, p)

	if defaults.BestTimes[Easy].Set || len(defaults.ThemesPlayed) != 0 {
		t.Error("Merge modified its defaults argument")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := DefaultStats()
	c := s.Clone()
	c.BestTimes[Easy] = BestOf(1)
	c.ThemesPlayed = append(c.ThemesPlayed, "x")

	if s.BestTimes[Easy].Set || len(s.ThemesPlayed) != 0 {
		t.Error("Clone shares state with the original")
	}
}

func TestAchievementMetadata(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range AllAchievements() {
		if a.Title() == "" || a.Description() == "" || a.Title() == string(a) {
			t.Errorf("%s lacks metadata", a)
		}
		if seen[a.Title()] {
			t.Errorf("duplicate title %q", a.Title())
		}
		seen[a.Title()] = true
	}

	var ach Achievements
	ach.PerfectMemory = true
	if got := ach.Unlocked(); len(got) != 1 || got[0] != AchievementPerfectMemory {
		t.Errorf("Unlocked = %v", got)
	}
	if ach.Has("bogus") {
		t.Error("unknown achievement reported as unlocked")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 999*time.Millisecond, "00:59"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, in := range []string{"easy", " Medium ", "HARD"} {
		if _, err := ParseDifficulty(in); err != nil {
			t.Errorf("ParseDifficulty(%q): %v", in, err)
		}
	}
	if _, err := ParseDifficulty("expert"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("err = %v", err)
	}
	if Medium.Title() != "Medium" {
		t.Errorf("Title = %q", Medium.Title())
	}
}

func TestRulesValidate(t *testing.T) {
	r := DefaultRules()
	if err := r.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	r.Grids = map[Difficulty]Grid{Easy: {Rows: 1, Cols: 1}}
	if err := r.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("1x1 grid: err = %v", err)
	}

	r.Grids = map[Difficulty]Grid{Hard: {Rows: 6, Cols: 6}}
	if err := r.Validate(); !errors.Is(err, ErrSymbolPoolTooSmall) {
		t.Errorf("oversized grid: err = %v", err)
	}

	r = DefaultRules()
	r.ResolveDelay = -time.Second
	if err := r.Validate(); err == nil {
		t.Error("negative delay accepted")
	}
}
