package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/linezen/internal/core"
)

// DefaultProfile is used when no player name is known.
const DefaultProfile = "local"

// ProfileEntry is a stored progress record with its owner.
type ProfileEntry struct {
	Profile   string
	Progress  core.Progress
	UpdatedAt time.Time
}

// ReadProgress returns the progress of profile. A profile that was never
// written reports the default progress and found=false.
func (s *Store) ReadProgress(profile string) (p core.Progress, found bool, err error) {
	var help, particles int
	err = s.db.QueryRow(
		`SELECT score, level, display_help, display_particles
		 FROM progress WHERE profile = ?`,
		profile,
	).Scan(&p.Score, &p.Level, &help, &particles)

	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultProgress(), false, nil
	}
	if err != nil {
		return core.Progress{}, false, fmt.Errorf("storage: cannot read progress: %w", err)
	}

	p.DisplayHelp = help != 0
	p.DisplayParticles = particles != 0
	return p, true, nil
}

// WriteProgress stores the whole record in a single statement.
func (s *Store) WriteProgress(profile string, p core.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, score, level, display_help, display_particles, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			score = excluded.score,
			level = excluded.level,
			display_help = excluded.display_help,
			display_particles = excluded.display_particles,
			updated_at = excluded.updated_at`,
		profile, p.Score, p.Level, boolInt(p.DisplayHelp), boolInt(p.DisplayParticles),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write progress: %w", err)
	}
	return nil
}

// EnsureProgress creates the default record for profile if it has none.
func (s *Store) EnsureProgress(profile string) error {
	d := core.DefaultProgress()
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO progress (profile, score, level, display_help, display_particles)
		 VALUES (?, ?, ?, ?, ?)`,
		profile, d.Score, d.Level, boolInt(d.DisplayHelp), boolInt(d.DisplayParticles),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot initialize progress: %w", err)
	}
	return nil
}

// ResetProgress deletes the progress record of profile.
func (s *Store) ResetProgress(profile string) error {
	if _, err := s.db.Exec("DELETE FROM progress WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// Profiles lists every stored progress record, best score first.
func (s *Store) Profiles() ([]ProfileEntry, error) {
	rows, err := s.db.Query(
		`SELECT profile, score, level, display_help, display_particles, updated_at
		 FROM progress
		 ORDER BY score DESC, profile`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var entries []ProfileEntry
	for rows.Next() {
		var e ProfileEntry
		var help, particles int
		var updatedAt any
		if err := rows.Scan(&e.Profile, &e.Progress.Score, &e.Progress.Level, &help, &particles, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Progress.DisplayHelp = help != 0
		e.Progress.DisplayParticles = particles != 0
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Profile is one player's progress record. It implements game.Persistence.
type Profile struct {
	store *Store
	name  string
}

// Profile returns the persistence handle for name.
func (s *Store) Profile(name string) *Profile {
	if name == "" {
		name = DefaultProfile
	}
	return &Profile{store: s, name: name}
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// Initialize makes sure the profile has a record.
func (p *Profile) Initialize() error {
	return p.store.EnsureProgress(p.name)
}

// ReadProgress returns the stored progress.
func (p *Profile) ReadProgress() (core.Progress, error) {
	prog, _, err := p.store.ReadProgress(p.name)
	return prog, err
}

// WriteProgress replaces the stored progress.
func (p *Profile) WriteProgress(prog core.Progress) error {
	return p.store.WriteProgress(p.name, prog)
}
