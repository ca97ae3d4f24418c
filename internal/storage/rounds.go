package storage

import (
	"fmt"
	"time"
)

// RoundEntry is one resolved line that popped at least one bubble.
type RoundEntry struct {
	ID        int64
	Profile   string
	SessionID string
	Mode      string
	LevelName string
	Hits      int
	Base      int
	Bonus     int
	Total     int
	CreatedAt time.Time
}

// ProfileStats contains aggregated round statistics for a profile.
type ProfileStats struct {
	Profile     string
	RoundsCount int
	BestTotal   int
	AvgTotal    float64
	TotalScore  int64
	BestHits    int
	LastPlayed  time.Time
}

// SaveRound records a round. Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (profile, session_id, mode, level_name, hits, base, bonus, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Profile, r.SessionID, r.Mode, r.LevelName, r.Hits, r.Base, r.Bonus, r.Total,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRounds retrieves the best N rounds, ordered by total descending.
// An empty profile selects every profile.
func (s *Store) TopRounds(profile string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, session_id, mode, level_name, hits, base, bonus, total, created_at
		 FROM rounds
		 WHERE ? = '' OR profile = ?
		 ORDER BY total DESC, id ASC
		 LIMIT ?`,
		profile, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.SessionID, &e.Mode, &e.LevelName,
			&e.Hits, &e.Base, &e.Bonus, &e.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearRounds deletes the round history of profile.
func (s *Store) ClearRounds(profile string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Stats retrieves aggregated round statistics for profile.
func (s *Store) Stats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(total), 0), COALESCE(AVG(total), 0),
		        COALESCE(SUM(total), 0), COALESCE(MAX(hits), 0), MAX(created_at)
		 FROM rounds WHERE profile = ?`,
		profile,
	).Scan(&stats.RoundsCount, &stats.BestTotal, &stats.AvgTotal,
		&stats.TotalScore, &stats.BestHits, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
