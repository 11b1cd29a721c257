package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// DefaultStatsKey is the well-known key the stats blob is stored under.
const DefaultStatsKey = "memoryGameStats"

// ErrCorruptStats is returned by StatsRepo.Load when the stored blob cannot be decoded.
var ErrCorruptStats = errors.New("memory: corrupt stats record")

// KVStore is the key-value persistence the engine writes its stats blob to.
type KVStore interface {
	// Get returns the value stored under key. found is false if there is none.
	Get(key string) (value []byte, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
}

// MemoryKV is an in-process KVStore. Used when no database is available.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key.
func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

var _ KVStore = (*MemoryKV)(nil)

// PartialStats is a stats blob as found in storage: any field may be absent.
type PartialStats struct {
	GamesPlayed           *int            `json:"gamesPlayed"`
	BestTimes             map[string]Best `json:"bestTimes"`
	BestMoves             map[string]Best `json:"bestMoves"`
	Achievements          map[string]bool `json:"achievements"`
	ThemesPlayed          []string        `json:"themesPlayed"`
	DifficultiesCompleted []string        `json:"difficultiesCompleted"`
}

// DecodeStats parses a stored stats blob.
func DecodeStats(data []byte) (PartialStats, error) {
	var p PartialStats
	if err := json.Unmarshal(data, &p); err != nil {
		return PartialStats{}, fmt.Errorf("%w: %v", ErrCorruptStats, err)
	}
	return p, nil
}

// Merge reconciles loaded data with defaults. Fields missing from loaded
// keep their default; present fields are sanitised (negative counters
// dropped, unknown difficulties dropped, duplicates removed). Merge never
// fails and does not modify its inputs.
func Merge(defaults PlayerStats, loaded PartialStats) PlayerStats {
	out := defaults.Clone()

	if loaded.GamesPlayed != nil && *loaded.GamesPlayed >= 0 {
		out.GamesPlayed = *loaded.GamesPlayed
	}

	for _, d := range Difficulties() {
		if b, ok := loaded.BestTimes[string(d)]; ok {
			out.BestTimes[d] = b
		}
		if b, ok := loaded.BestMoves[string(d)]; ok {
			out.BestMoves[d] = b
		}
	}

	for _, a := range AllAchievements() {
		if v, ok := loaded.Achievements[string(a)]; ok {
			*out.Achievements.flag(a) = v
		}
	}

	if loaded.ThemesPlayed != nil {
		out.ThemesPlayed = []string{}
		for _, t := range loaded.ThemesPlayed {
			if t != "" && !containsString(out.ThemesPlayed, t) {
				out.ThemesPlayed = append(out.ThemesPlayed, t)
			}
		}
	}

	if loaded.DifficultiesCompleted != nil {
		out.DifficultiesCompleted = []Difficulty{}
		for _, raw := range loaded.DifficultiesCompleted {
			d := Difficulty(raw)
			if d.Valid() && !containsDifficulty(out.DifficultiesCompleted, d) {
				out.DifficultiesCompleted = append(out.DifficultiesCompleted, d)
			}
		}
	}

	return out
}

// StatsRepo reads and writes PlayerStats as a single JSON record.
type StatsRepo struct {
	KV  KVStore
	Key string
}

// NewStatsRepo creates a repository. An empty key means DefaultStatsKey.
func NewStatsRepo(kv KVStore, key string) StatsRepo {
	if key == "" {
		key = DefaultStatsKey
	}
	return StatsRepo{KV: kv, Key: key}
}

// Load returns the stored stats merged with defaults. found is false when
// nothing is stored. A corrupt record yields defaults together with an
// error wrapping ErrCorruptStats.
func (r StatsRepo) Load() (stats PlayerStats, found bool, err error) {
	data, found, err := r.KV.Get(r.Key)
	if err != nil {
		return DefaultStats(), false, fmt.Errorf("memory: load stats: %w", err)
	}
	if !found || len(data) == 0 {
		return DefaultStats(), false, nil
	}

	partial, err := DecodeStats(data)
	if err != nil {
		return DefaultStats(), false, err
	}

	return Merge(DefaultStats(), partial), true, nil
}

// Save overwrites the stored record with stats.
func (r StatsRepo) Save(stats PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("memory: encode stats: %w", err)
	}
	if err := r.KV.Put(r.Key, data); err != nil {
		return fmt.Errorf("memory: save stats: %w", err)
	}
	return nil
}
