package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(seed uint64) *EventEngine {
	return NewEventEngine(DefaultCatalog(), rand.New(rand.NewPCG(seed, seed+1)))
}

// plantEvent installs a hand-built pending event so resolution tests do
// not depend on which template the sampler draws.
func plantEvent(gs *GameState, accept, decline EventOption) *Event {
	ev := &Event{
		ID:        "event-test-1",
		Tier:      TierEveryday,
		Title:     "Test Signal",
		Options:   []EventOption{accept, decline},
		CreatedAt: time.Now(),
	}
	gs.ActiveEvent = ev
	return ev
}

func TestGenerateSetsActiveEvent(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	gs := NewGameState(now)
	engine := testEngine(42)

	ev, fresh := engine.Generate(gs, now.Add(time.Minute))
	require.NotNil(t, ev)
	assert.True(t, fresh)
	assert.Same(t, ev, gs.ActiveEvent)
	assert.Len(t, ev.Options, 2)
	assert.False(t, ev.Resolved)
	assert.Equal(t, now.Add(time.Minute), gs.LastEventTime)
}

func TestGenerateWhilePendingReturnsExisting(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	gs := NewGameState(now)
	engine := testEngine(42)

	first, _ := engine.Generate(gs, now)
	second, fresh := engine.Generate(gs, now.Add(time.Hour))
	assert.Same(t, first, second)
	assert.False(t, fresh)
}

func TestResolveNothingPending(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)

	res := engine.Resolve(gs, 0)
	assert.False(t, res.Applied)
	assert.Empty(t, gs.EventHistory)
}

func TestResolveOutOfRangeChoice(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)
	plantEvent(gs,
		EventOption{Label: "a", SuccessRate: 100},
		EventOption{Label: "b", SuccessRate: 100},
	)

	assert.False(t, engine.Resolve(gs, 2).Applied)
	assert.False(t, engine.Resolve(gs, -1).Applied)
	assert.NotNil(t, gs.ActiveEvent, "a bad choice must not consume the event")
}

func TestResolveGuaranteedSuccess(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)
	plantEvent(gs,
		EventOption{Label: "salvage", SuccessRate: 100, DarkMatter: 300, Distance: 50, PartReward: "hull-upper"},
		EventOption{Label: "ignore", SuccessRate: 100},
	)
	boostBefore := gs.BoostPoints

	res := engine.Resolve(gs, 0)
	require.True(t, res.Applied)
	assert.True(t, res.Succeeded)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, 300.0, res.DarkMatterDelta)
	assert.Equal(t, 50.0, res.DistanceDelta)
	assert.Equal(t, "hull-upper", res.PartGranted)
	assert.Equal(t, 1, res.BoostGranted)

	assert.Equal(t, 400.0, gs.DarkMatter)
	assert.Equal(t, 50.0, gs.Distance)
	assert.Equal(t, 1, gs.SpareParts["hull-upper"])
	assert.Equal(t, boostBefore+1, gs.BoostPoints)

	assert.Nil(t, gs.ActiveEvent)
	require.Len(t, gs.EventHistory, 1)
	assert.True(t, gs.EventHistory[0].Resolved)
	assert.Equal(t, OutcomeAccepted, gs.EventHistory[0].Outcome)
}

func TestResolveGuaranteedFailure(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)
	plantEvent(gs,
		EventOption{Label: "gamble", SuccessRate: 0, DarkMatter: 9999, Distance: 9999, PartReward: "weapon"},
		EventOption{Label: "ignore", SuccessRate: 100},
	)

	res := engine.Resolve(gs, 0)
	require.True(t, res.Applied)
	assert.False(t, res.Succeeded)
	assert.Zero(t, res.DarkMatterDelta)
	assert.Zero(t, res.DistanceDelta)
	assert.Empty(t, res.PartGranted)
	assert.Zero(t, res.BoostGranted)

	assert.Equal(t, 100.0, gs.DarkMatter)
	assert.Zero(t, gs.Distance)
	assert.Empty(t, gs.SpareParts)

	// A failed roll still consumes and archives the event.
	assert.Nil(t, gs.ActiveEvent)
	assert.Len(t, gs.EventHistory, 1)
}

func TestResolveDecline(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)
	plantEvent(gs,
		EventOption{Label: "enter", SuccessRate: 50, DarkMatter: 1000},
		EventOption{Label: "avoid", SuccessRate: 100, DarkMatter: 0, Distance: 300},
	)

	res := engine.Resolve(gs, 1)
	require.True(t, res.Applied)
	assert.Equal(t, OutcomeDeclined, res.Outcome)
	assert.True(t, res.Succeeded)
	assert.Equal(t, 300.0, res.DistanceDelta)
	assert.Equal(t, 300.0, gs.Distance)
}

func TestResolveRewardClampsToStorage(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)
	storage := float64(gs.EffectiveStats().Storage)
	plantEvent(gs,
		EventOption{Label: "jackpot", SuccessRate: 100, DarkMatter: 1_000_000},
		EventOption{Label: "ignore", SuccessRate: 100},
	)

	res := engine.Resolve(gs, 0)
	assert.Equal(t, storage, gs.DarkMatter)
	assert.Equal(t, storage-100, res.DarkMatterDelta)
}

func TestResolveDistanceFlooredAtZero(t *testing.T) {
	gs := NewGameState(time.Now())
	gs.Distance = 200
	engine := testEngine(1)
	plantEvent(gs,
		EventOption{Label: "rewind", SuccessRate: 100, Distance: -500},
		EventOption{Label: "ignore", SuccessRate: 100},
	)

	res := engine.Resolve(gs, 0)
	assert.Zero(t, gs.Distance)
	assert.Equal(t, -200.0, res.DistanceDelta)
}

func TestEventHistoryCapped(t *testing.T) {
	gs := NewGameState(time.Now())
	engine := testEngine(1)

	for i := 0; i < eventHistoryCap+20; i++ {
		plantEvent(gs,
			EventOption{Label: "a", SuccessRate: 100},
			EventOption{Label: "b", SuccessRate: 100},
		)
		require.True(t, engine.Resolve(gs, 1).Applied)
	}
	assert.Len(t, gs.EventHistory, eventHistoryCap)
}

func TestSeededEnginesAreReproducible(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	run := func() []string {
		gs := NewGameState(now)
		engine := testEngine(99)
		var titles []string
		for i := 0; i < 20; i++ {
			ev, _ := engine.Generate(gs, now.Add(time.Duration(i)*time.Minute))
			titles = append(titles, ev.Title)
			engine.Resolve(gs, i%2)
		}
		return titles
	}

	assert.Equal(t, run(), run())
}
