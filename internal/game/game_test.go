package game

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/event"
	"github.com/vovakirdan/linezen/internal/level"
	"github.com/vovakirdan/linezen/internal/rng"
)

// harness wires a core to a scripted pointer and an event queue.
type harness struct {
	core  *Core
	input *core.PointerFrame
	store *MemoryProgress
	queue *event.Queue
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{
		input: &core.PointerFrame{HalfExtent: core.Pt(4, 2.4)},
		store: NewMemoryProgress(),
		queue: &event.Queue{},
	}
	if p, ok := opts.Persistence.(*MemoryProgress); ok {
		h.store = p
	}
	opts.Input = h.input
	opts.Persistence = h.store
	opts.Events = event.NewDispatcher()
	opts.Events.SubscribeAll(h.queue)
	h.core = NewCore(opts)
	return h
}

// press ticks once with the pointer held at p.
func (h *harness) press(p core.Point) core.StepResult {
	h.input.Down = true
	h.input.Position = p
	return h.core.Tick()
}

// release ticks once with the pointer up.
func (h *harness) release() core.StepResult {
	h.input.Down = false
	return h.core.Tick()
}

// stroke draws a full line from a to b over three ticks.
func (h *harness) stroke(a, b core.Point) core.StepResult {
	h.press(a)
	h.press(b)
	return h.release()
}

func kinds(events []event.Event) []event.Kind {
	out := make([]event.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind()
	}
	return out
}

func expectKinds(t *testing.T, got []event.Event, expected ...event.Kind) {
	t.Helper()
	k := kinds(got)
	if len(k) != len(expected) {
		t.Fatalf("events = %v, expected %v", k, expected)
	}
	for i := range expected {
		if k[i] != expected[i] {
			t.Errorf("events[%d] = %v, expected %v (all: %v)", i, k[i], expected[i], k)
		}
	}
}

func asset(id, text string) *level.Asset {
	return &level.Asset{ID: id, Text: text}
}

const threeInARow = "bubble = -2, 0\nbubble = 0, 0\nbubble = 2, 0\nline = -3, 0 : 3, 0\n"

func TestFirstTickOrdering(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateStartup})

	res := h.core.Tick()
	if res.State != core.StateStartup {
		t.Errorf("State = %v, expected Startup", res.State)
	}
	if !h.store.Initialized() {
		t.Error("first tick should initialize persistence")
	}

	events := h.queue.Drain()
	expectKinds(t, events, event.KindStateChanged, event.KindInitialized)
	if sc := events[0].(event.StateChanged); sc.State != core.StateStartup {
		t.Errorf("StateChanged.State = %v, expected Startup", sc.State)
	}

	h.core.Tick()
	if h.queue.Len() != 0 {
		t.Errorf("idle Startup tick emitted %v", kinds(h.queue.Drain()))
	}
}

func TestTutorialOneEmptyLevelAdvances(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialOne,
		TutorialOne:  asset("empty", ""),
		TutorialTwo:  asset("two", threeInARow),
	})

	res := h.core.Tick()
	if res.State != core.StateTutorialTwo {
		t.Fatalf("State = %v, expected TutorialTwo", res.State)
	}
	expectKinds(t, h.queue.Drain(),
		event.KindStateChanged, event.KindInitialized,
		event.KindBubblesChanged, event.KindGuideLinesChanged,
		event.KindStateChanged)

	res = h.core.Tick()
	if res.State != core.StateTutorialTwo || res.Bubbles != 3 {
		t.Errorf("second tick = %v with %d bubbles, expected TutorialTwo with 3", res.State, res.Bubbles)
	}
}

func TestTutorialWithoutLevelGoesToGame(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateTutorialOne})

	res := h.core.Tick()
	if res.State != core.StateGame {
		t.Errorf("State = %v, expected Game", res.State)
	}
}

func TestLineLifecycleAndScoring(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialOne,
		TutorialOne:  asset("one", threeInARow+"bubble = 0, 2\n"),
		TutorialTwo:  asset("two", threeInARow),
	})
	h.core.Tick()
	h.queue.Drain()

	h.press(core.Pt(-3, 0))
	created := h.queue.Drain()
	expectKinds(t, created, event.KindLineCreated)
	if lc := created[0].(event.LineCreated); lc.Start != lc.End || lc.Start != core.Pt(-3, 0) {
		t.Errorf("LineCreated = %+v, expected start == end == (-3, 0)", lc)
	}

	h.press(core.Pt(3, 0))
	updated := h.queue.Drain()
	expectKinds(t, updated, event.KindLineUpdated)
	if lu := updated[0].(event.LineUpdated); lu.Start != core.Pt(-3, 0) || lu.End != core.Pt(3, 0) {
		t.Errorf("LineUpdated = %+v, expected (-3, 0) -> (3, 0)", lu)
	}

	res := h.release()
	released := h.queue.Drain()
	expectKinds(t, released,
		event.KindBubbleDestroyed, event.KindBubbleDestroyed, event.KindBubbleDestroyed,
		event.KindBubblesChanged, event.KindLineDestroyed)

	// Last index first.
	if bd := released[0].(event.BubbleDestroyed); bd.Position != core.Pt(2, 0) {
		t.Errorf("first BubbleDestroyed = %v, expected (2, 0)", bd.Position)
	}

	ld := released[4].(event.LineDestroyed)
	if ld.Score.Base != 60 || ld.Score.Bonus != 40 || ld.Score.Total != 100 {
		t.Errorf("score = %d/%d/%d, expected 60/40/100", ld.Score.Base, ld.Score.Bonus, ld.Score.Total)
	}
	if res.Bubbles != 1 || res.State != core.StateTutorialOne {
		t.Errorf("after stroke: %v with %d bubbles, expected TutorialOne with 1", res.State, res.Bubbles)
	}

	p, _ := h.store.ReadProgress()
	if p.Score != 100 {
		t.Errorf("persisted score = %d, expected 100", p.Score)
	}
}

func TestTutorialOneClearedAdvances(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialOne,
		TutorialOne:  asset("one", threeInARow),
		TutorialTwo:  asset("two", threeInARow),
	})
	h.core.Tick()
	h.queue.Drain()

	res := h.stroke(core.Pt(-3, 0), core.Pt(3, 0))
	if res.State != core.StateTutorialTwo {
		t.Errorf("State = %v, expected TutorialTwo", res.State)
	}
	events := h.queue.Drain()
	last := events[len(events)-1]
	if sc, ok := last.(event.StateChanged); !ok || sc.State != core.StateTutorialTwo {
		t.Errorf("last event = %#v, expected StateChanged(TutorialTwo)", last)
	}
}

func TestTutorialTwoRetriesWithOneLeft(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialTwo,
		TutorialTwo:  asset("two", "bubble = -2, 0\nbubble = 0, 2\n"),
	})
	h.core.Tick()
	h.queue.Drain()

	// Pops the first bubble only.
	h.stroke(core.Pt(-3, 0), core.Pt(-1, 0))
	h.queue.Drain()

	res := h.core.Tick()
	if res.Bubbles != 2 {
		t.Errorf("Bubbles = %d, expected repopulated 2", res.Bubbles)
	}
	if res.State != core.StateTutorialTwo {
		t.Errorf("State = %v, expected TutorialTwo", res.State)
	}
	// Repopulation is silent about state: no StateChanged.
	expectKinds(t, h.queue.Drain(), event.KindBubblesChanged, event.KindGuideLinesChanged)
}

func TestReentryIsIdempotent(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialOne,
		TutorialOne:  asset("one", threeInARow),
	})
	h.core.Tick()
	h.queue.Drain()

	for i := 0; i < 10; i++ {
		h.core.Tick()
	}
	if h.queue.Len() != 0 {
		t.Errorf("idle ticks emitted %v", kinds(h.queue.Drain()))
	}

	// Pop one, then tick: the popped bubble must not come back.
	h.stroke(core.Pt(-2, -1), core.Pt(-2, 1))
	res := h.core.Tick()
	if res.Bubbles != 2 {
		t.Errorf("Bubbles = %d, expected 2", res.Bubbles)
	}

	// Explicit re-entry repopulates.
	h.core.RequestState(core.StateTutorialOne, core.ModeChallengeLevel)
	res = h.core.Tick()
	if res.Bubbles != 3 {
		t.Errorf("Bubbles after re-entry = %d, expected 3", res.Bubbles)
	}
}

func TestMalformedLevelIsRefused(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateStartup})
	h.core.Tick()
	h.queue.Drain()

	h.core.AssignLevel(asset("broken", "bubble = 1, 1\nbubble 2, 2\n"))
	h.core.RequestState(core.StateGame, core.ModeChallengeLevel)
	res := h.core.Tick()

	if res.State != core.StateStartup {
		t.Errorf("State = %v, expected Startup", res.State)
	}
	if res.Bubbles != 0 {
		t.Errorf("Bubbles = %d, expected no partial population", res.Bubbles)
	}

	var failed *event.LevelFailed
	for _, e := range h.queue.Drain() {
		if lf, ok := e.(event.LevelFailed); ok {
			failed = &lf
		}
	}
	if failed == nil {
		t.Fatal("expected a LevelFailed event")
	}
	if !errors.Is(failed.Err, level.ErrMalformedLevel) {
		t.Errorf("LevelFailed.Err = %v, expected ErrMalformedLevel", failed.Err)
	}
	if failed.State != core.StateGame {
		t.Errorf("LevelFailed.State = %v, expected Game", failed.State)
	}
}

func TestChallengeWithoutLevel(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateGame, InitialMode: core.ModeChallengeLevel})

	res := h.core.Tick()
	if res.State != core.StateStartup {
		t.Errorf("State = %v, expected Startup", res.State)
	}

	found := false
	for _, e := range h.queue.Drain() {
		if lf, ok := e.(event.LevelFailed); ok && errors.Is(lf.Err, ErrNoLevel) {
			found = true
		}
	}
	if !found {
		t.Error("expected LevelFailed with ErrNoLevel")
	}
}

func TestChallengeReplaysWhenCleared(t *testing.T) {
	h := newHarness(t, Options{})
	h.core.AssignLevel(asset("c1", "name = Pair\nbubble = -1, 0\nbubble = 1, 0\n"))
	h.core.RequestState(core.StateGame, core.ModeChallengeLevel)
	h.core.Tick()

	if name := h.core.Snapshot().LevelName; name != "Pair" {
		t.Errorf("LevelName = %q, expected %q", name, "Pair")
	}

	res := h.stroke(core.Pt(-2, 0), core.Pt(2, 0))
	if res.State != core.StateGame || res.Bubbles != 0 {
		t.Fatalf("after clear: %v with %d bubbles, expected Game with 0", res.State, res.Bubbles)
	}
	res = h.core.Tick()
	if res.Bubbles != 2 {
		t.Errorf("Bubbles = %d, expected level replayed with 2", res.Bubbles)
	}
}

func approx(a, b core.Point) bool {
	return math.Abs(a.X-b.X) < 1e-12 && math.Abs(a.Y-b.Y) < 1e-12
}

func TestGenerateGolden(t *testing.T) {
	half := core.Pt(4, 2.4)
	tests := []struct {
		level    int
		expected []core.Point
	}{
		{0, []core.Point{
			core.Pt(-2.3221427222373494, 1.2053775193259744),
			core.Pt(-3.2844571655550223, -1.0786851284181296),
		}},
		{4, []core.Point{
			core.Pt(-1.8209878987275072, -0.30296615884683564),
			core.Pt(0.015677062451958435, 1.6505007399030545),
			core.Pt(-2.535607724807944, -0.7311373854543688),
			core.Pt(1.5310826484888698, -0.8650056280831692),
		}},
	}

	for _, tc := range tests {
		got, err := Generate(tc.level, half, DefaultConfig())
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", tc.level, err)
		}
		if len(got) != len(tc.expected) {
			t.Fatalf("Generate(%d) produced %d bubbles, expected %d", tc.level, len(got), len(tc.expected))
		}
		for i := range got {
			if !approx(got[i], tc.expected[i]) {
				t.Errorf("Generate(%d)[%d] = %v, expected %v", tc.level, i, got[i], tc.expected[i])
			}
		}
	}
}

func TestGenerateCountAndBounds(t *testing.T) {
	half := core.Pt(4, 2.4)
	cfg := DefaultConfig()

	for lvl := 0; lvl < 40; lvl++ {
		got, err := Generate(lvl, half, cfg)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", lvl, err)
		}

		expected := lvl/2 + 2
		if expected > cfg.MaxOnScreen {
			expected = cfg.MaxOnScreen
		}
		if len(got) != expected {
			t.Errorf("Generate(%d) produced %d bubbles, expected %d", lvl, len(got), expected)
		}

		r := cfg.Rules.BubbleRadius
		for _, b := range got {
			if math.Abs(b.X) > half.X-r || math.Abs(b.Y) > half.Y-2*r {
				t.Errorf("Generate(%d) bubble %v outside visible area", lvl, b)
			}
		}

		again, _ := Generate(lvl, half, cfg)
		for i := range got {
			if got[i] != again[i] {
				t.Errorf("Generate(%d) is not deterministic at %d", lvl, i)
			}
		}
	}
}

func TestGenerateInvalidSeed(t *testing.T) {
	_, err := Generate(29990, core.Pt(4, 2.4), DefaultConfig())
	if !errors.Is(err, rng.ErrInvalidSeed) {
		t.Errorf("Generate() error = %v, expected ErrInvalidSeed", err)
	}
}

func TestInfiniteLevelIncrementsOnce(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateGame, InitialMode: core.ModeInfinite})

	res := h.core.Tick()
	if res.Bubbles != 2 {
		t.Fatalf("Bubbles = %d, expected 2 at level 0", res.Bubbles)
	}

	b := h.core.Bubbles()
	dir := b[1].Sub(b[0])
	res = h.stroke(b[0].Sub(dir.Scale(0.1)), b[1].Add(dir.Scale(0.1)))
	if res.Bubbles != 0 {
		t.Fatalf("Bubbles = %d after stroke, expected 0", res.Bubbles)
	}

	p, _ := h.store.ReadProgress()
	if p.Level != 1 {
		t.Errorf("Level = %d, expected 1", p.Level)
	}
	if p.Score != 50 {
		t.Errorf("Score = %d, expected 50", p.Score)
	}

	for i := 0; i < 5; i++ {
		h.core.Tick()
	}
	p, _ = h.store.ReadProgress()
	if p.Level != 1 {
		t.Errorf("Level = %d after more ticks, expected 1", p.Level)
	}

	expected, _ := Generate(1, h.input.HalfExtent, DefaultConfig())
	got := h.core.Bubbles()
	if len(got) != len(expected) {
		t.Fatalf("next round has %d bubbles, expected %d", len(got), len(expected))
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("next round bubble %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestInfiniteInvalidSeedIsRefused(t *testing.T) {
	store := NewMemoryProgressFrom(core.Progress{Level: 29990})
	h := newHarness(t, Options{
		InitialState: core.StateGame,
		InitialMode:  core.ModeInfinite,
		Persistence:  store,
	})

	res := h.core.Tick()
	if res.State != core.StateStartup {
		t.Errorf("State = %v, expected Startup", res.State)
	}
	found := false
	for _, e := range h.queue.Drain() {
		if lf, ok := e.(event.LevelFailed); ok && errors.Is(lf.Err, rng.ErrInvalidSeed) {
			found = true
		}
	}
	if !found {
		t.Error("expected LevelFailed with ErrInvalidSeed")
	}
}

func TestZeroLengthLineScoresNothing(t *testing.T) {
	h := newHarness(t, Options{
		InitialState: core.StateTutorialOne,
		TutorialOne:  asset("one", threeInARow),
	})
	h.core.Tick()
	h.queue.Drain()

	h.press(core.Pt(0, 0))
	res := h.release()
	if res.Bubbles != 3 {
		t.Errorf("Bubbles = %d, expected 3", res.Bubbles)
	}

	events := h.queue.Drain()
	expectKinds(t, events, event.KindLineCreated, event.KindBubblesChanged, event.KindLineDestroyed)
	if ld := events[2].(event.LineDestroyed); ld.Score.Total != 0 {
		t.Errorf("Total = %d, expected 0", ld.Score.Total)
	}
}

func TestNoLineOutsideLevelStates(t *testing.T) {
	h := newHarness(t, Options{InitialState: core.StateOptions})
	h.core.Tick()
	h.queue.Drain()

	h.stroke(core.Pt(0, 0), core.Pt(1, 1))
	if h.queue.Len() != 0 {
		t.Errorf("Options state emitted %v", kinds(h.queue.Drain()))
	}
}

func TestExit(t *testing.T) {
	h := newHarness(t, Options{})
	h.core.RequestState(core.StateExit, core.ModeChallengeLevel)
	if res := h.core.Tick(); !res.Exit {
		t.Error("Exit state should ask the host to shut down")
	}
}

func TestRequestStateCarriesMode(t *testing.T) {
	h := newHarness(t, Options{})
	h.core.Tick()
	h.queue.Drain()

	h.core.RequestState(core.StateGame, core.ModeInfinite)
	events := h.queue.Drain()
	expectKinds(t, events, event.KindStateChanged)
	if sc := events[0].(event.StateChanged); sc.State != core.StateGame || sc.Mode != core.ModeInfinite {
		t.Errorf("StateChanged = %+v, expected Game/Infinite", sc)
	}
}

func TestDisplayToggles(t *testing.T) {
	h := newHarness(t, Options{})

	if err := h.core.SetShowHelp(false); err != nil {
		t.Fatalf("SetShowHelp() error = %v", err)
	}
	if err := h.core.SetShowParticles(false); err != nil {
		t.Fatalf("SetShowParticles() error = %v", err)
	}

	p, _ := h.core.Progress()
	if p.DisplayHelp || p.DisplayParticles {
		t.Errorf("Progress = %+v, expected both toggles off", p)
	}
	if h.store.Writes() != 2 {
		t.Errorf("Writes() = %d, expected 2", h.store.Writes())
	}
}
