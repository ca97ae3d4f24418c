package game

import "github.com/vovakirdan/linezen/internal/core"

// MemoryProgress is a Persistence kept in memory.
type MemoryProgress struct {
	progress    core.Progress
	initialized bool
	writes      int
}

// NewMemoryProgress creates a record holding the default progress.
func NewMemoryProgress() *MemoryProgress {
	return &MemoryProgress{progress: core.DefaultProgress()}
}

// NewMemoryProgressFrom creates a record holding p.
func NewMemoryProgressFrom(p core.Progress) *MemoryProgress {
	return &MemoryProgress{progress: p}
}

func (m *MemoryProgress) Initialize() error {
	m.initialized = true
	return nil
}

func (m *MemoryProgress) ReadProgress() (core.Progress, error) {
	return m.progress, nil
}

func (m *MemoryProgress) WriteProgress(p core.Progress) error {
	m.progress = p
	m.writes++
	return nil
}

// Initialized reports whether Initialize ran.
func (m *MemoryProgress) Initialized() bool {
	return m.initialized
}

// Writes returns the number of WriteProgress calls.
func (m *MemoryProgress) Writes() int {
	return m.writes
}
