// Package level parses and loads authored Line Zen levels.
//
// A level file is plain text with one "key = value" entry per line:
//
//	name   = Title shown in the HUD
//	bubble = x, y
//	line   = x1, y1 : x2, y2
//
// Keys are case-insensitive. Unknown keys are ignored, blank lines and lines
// starting with '#' are skipped.
package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/linezen/internal/core"
)

// ErrMalformedLevel is returned when a line breaks the key=value contract.
var ErrMalformedLevel = errors.New("level: malformed level")

// ParseError describes the offending line of a malformed level.
type ParseError struct {
	Line   int    // 1-based line number
	Text   string // Raw line content
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("level: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedLevel.
func (e *ParseError) Unwrap() error {
	return ErrMalformedLevel
}

// Level is the parsed content of a level file.
type Level struct {
	Name       string
	Bubbles    []core.Point     // Declaration order
	GuideLines []core.GuideLine // Declaration order
}

// Parse turns level text into a Level. Parsing is all-or-nothing: on error
// the returned Level is empty and nothing has been applied anywhere.
func Parse(text string) (Level, error) {
	var lvl Level

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) < 2 {
			return Level{}, &ParseError{Line: i + 1, Text: line, Reason: "missing '='"}
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch key {
		case "bubble":
			p, err := parsePoint(value)
			if err != nil {
				return Level{}, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
			}
			lvl.Bubbles = append(lvl.Bubbles, p)

		case "line":
			ends := strings.Split(value, ":")
			if len(ends) < 2 {
				return Level{}, &ParseError{Line: i + 1, Text: line, Reason: "line needs two points separated by ':'"}
			}
			a, err := parsePoint(ends[0])
			if err != nil {
				return Level{}, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
			}
			b, err := parsePoint(ends[1])
			if err != nil {
				return Level{}, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
			}
			lvl.GuideLines = append(lvl.GuideLines, core.GuideLine{A: a, B: b})

		case "name":
			lvl.Name = value
		}
	}

	return lvl, nil
}

// parsePoint parses "x, y". Extra components are ignored.
func parsePoint(s string) (core.Point, error) {
	coords := strings.Split(s, ",")
	if len(coords) < 2 {
		return core.Point{}, fmt.Errorf("expected 'x, y', got %q", strings.TrimSpace(s))
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("bad y coordinate: %w", err)
	}

	return core.Pt(x, y), nil
}
