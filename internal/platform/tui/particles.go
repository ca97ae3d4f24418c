package tui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/linezen/internal/core"
)

// shardCount is the number of shards thrown by one pop.
const shardCount = 8

// pop is the burst left behind by a destroyed bubble.
type pop struct {
	center core.Point
	spread *gween.Tween // World radius of the shard ring
	fade   *gween.Tween // 1 when fresh, 0 when gone
	radius float32
	life   float32
}

// Particles animates bubble pops. It is driven by the simulation tick.
type Particles struct {
	pops      []*pop
	duration  float32
	maxRadius float32
}

// NewParticles creates a particle system. Each pop lasts duration seconds and
// its shards travel maxRadius world units.
func NewParticles(duration, maxRadius float64) *Particles {
	return &Particles{
		duration:  float32(duration),
		maxRadius: float32(maxRadius),
	}
}

// Spawn starts a pop at the given world position.
func (p *Particles) Spawn(at core.Point) {
	p.pops = append(p.pops, &pop{
		center: at,
		spread: gween.New(0, p.maxRadius, p.duration, ease.OutQuad),
		fade:   gween.New(1, 0, p.duration, ease.Linear),
		life:   1,
	})
}

// Update advances every pop by dt seconds and drops finished ones.
func (p *Particles) Update(dt float32) {
	alive := p.pops[:0]
	for _, pp := range p.pops {
		pp.radius, _ = pp.spread.Update(dt)
		var finished bool
		pp.life, finished = pp.fade.Update(dt)
		if finished {
			continue
		}
		alive = append(alive, pp)
	}
	for i := len(alive); i < len(p.pops); i++ {
		p.pops[i] = nil
	}
	p.pops = alive
}

// Len returns the number of live pops.
func (p *Particles) Len() int {
	return len(p.pops)
}

// Clear drops every pop.
func (p *Particles) Clear() {
	p.pops = nil
}

// Draw renders the live pops.
func (p *Particles) Draw(s *core.Screen, proj core.Projection) {
	for _, pp := range p.pops {
		r := shardRune(pp.life)
		for i := 0; i < shardCount; i++ {
			angle := 2 * math.Pi * float64(i) / shardCount
			at := pp.center.Add(core.Pt(math.Cos(angle), math.Sin(angle)).Scale(float64(pp.radius)))
			x, y := proj.ToCell(at)
			s.Set(x, y, r, core.ColorParticle)
		}
	}
}

// shardRune picks a glyph that thins out as the pop fades.
func shardRune(life float32) rune {
	switch {
	case life > 0.66:
		return '*'
	case life > 0.33:
		return '+'
	default:
		return '.'
	}
}
