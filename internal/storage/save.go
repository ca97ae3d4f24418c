package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/linezen/internal/core"
)

// saveDocument is the YAML document stored inside a save blob.
type saveDocument struct {
	Profile  string        `yaml:"profile"`
	Progress core.Progress `yaml:"progress"`
}

// ExportSave encodes the progress of profile as a save blob.
func (s *Store) ExportSave(profile string) (string, error) {
	p, _, err := s.ReadProgress(profile)
	if err != nil {
		return "", err
	}
	return EncodeSave(profile, p)
}

// ImportSave decodes blob and stores its progress under profile.
// It returns the imported progress.
func (s *Store) ImportSave(profile, blob string) (core.Progress, error) {
	_, p, err := DecodeSave(blob)
	if err != nil {
		return core.Progress{}, err
	}
	if err := s.WriteProgress(profile, p); err != nil {
		return core.Progress{}, err
	}
	return p, nil
}

// EncodeSave builds a save blob for p.
func EncodeSave(profile string, p core.Progress) (string, error) {
	data, err := yaml.Marshal(saveDocument{Profile: profile, Progress: p})
	if err != nil {
		return "", fmt.Errorf("storage: cannot marshal save: %w", err)
	}
	return CompressString(string(data))
}

// DecodeSave reads a save blob and returns the profile it was exported from
// and its progress.
func DecodeSave(blob string) (string, core.Progress, error) {
	text, err := DecompressString(blob)
	if err != nil {
		return "", core.Progress{}, err
	}

	doc := saveDocument{Progress: core.DefaultProgress()}
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return "", core.Progress{}, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	return doc.Profile, doc.Progress, nil
}
