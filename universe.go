package fallingsand

import (
	"github.com/google/uuid"

	"github.com/gekko3d/fallingsand/config"
)

// Universe is the whole of the simulation core's state: the cell grid, its
// dirty-rect index, the deterministic PRNG, the Ghost auxiliary table, and
// the generation counter that drives the scheduler (§3). A Universe owns a
// single contiguous allocation for its grid and never resizes it; construct
// a new Universe to change dimensions.
type Universe struct {
	store      *store
	chunks     *chunkIndex
	rng        *rng
	ghosts     *ghostTable
	params     ruleParams
	generation uint64
	logger     Logger
	id         uuid.UUID
}

// New constructs a Universe of the given dimensions. cfg supplies the
// tunables listed in config.RulesConfig and config.GhostConfig; a nil cfg
// uses config.Default() (§4.6). width and height must both be positive.
//
// Every tunable cfg carries is copied into this Universe's own params/ghosts
// fields at construction time rather than into shared package state, so two
// Universes built with different configs (even live, in the same process)
// never observe or clobber each other's physics constants (§3).
func New(width, height int, cfg *config.Config) *Universe {
	if width <= 0 || height <= 0 {
		panic("fallingsand: New requires positive width and height")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	u := &Universe{
		store:  newStore(width, height),
		chunks: newChunkIndex(width, height),
		rng:    newRNG(cfg.Grid.Seed),
		ghosts: newGhostTable(cfg.Ghost.BlinkPeriod),
		params: rulesConfigToParams(cfg),
		logger: NewNopLogger(),
		id:     uuid.New(),
	}
	return u
}

// rulesConfigToParams builds this Universe's own ruleParams from cfg.Rules,
// starting from the built-in defaults and overriding only the fields cfg
// actually sets (a zero value in cfg.Rules means "use the default").
func rulesConfigToParams(cfg *config.Config) ruleParams {
	p := defaultRuleParams()
	if cfg.Rules.WaterRerandomizeChance > 0 {
		p.waterRerandomizeChance = cfg.Rules.WaterRerandomizeChance
	}
	if cfg.Rules.SmokeDriftChance > 0 {
		p.smokeDriftChance = cfg.Rules.SmokeDriftChance
	}
	if cfg.Rules.FireLifeMin > 0 {
		p.fireLifeMin = cfg.Rules.FireLifeMin
	}
	if cfg.Rules.FireLifeMax > 0 {
		p.fireLifeMax = cfg.Rules.FireLifeMax
	}
	if cfg.Rules.SmokeLifeMin > 0 {
		p.smokeLifeMin = cfg.Rules.SmokeLifeMin
	}
	if cfg.Rules.SmokeLifeMax > 0 {
		p.smokeLifeMax = cfg.Rules.SmokeLifeMax
	}
	return p
}

// SetLogger installs l as the Universe's logger (§4.7); pass NewNopLogger()
// to silence it again.
func (u *Universe) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	u.logger = l
}

// ID is the run identifier generated at construction, carried into every
// panic message (§7) so a crash report can be correlated with logs; it is
// never read by the simulation itself and plays no part in any tested
// invariant.
func (u *Universe) ID() uuid.UUID { return u.id }

// Width, Height report the fixed grid dimensions.
func (u *Universe) Width() int  { return u.store.width }
func (u *Universe) Height() int { return u.store.height }

// Generation returns the number of ticks completed so far.
func (u *Universe) Generation() uint64 { return u.generation }

// Tick advances the simulation by exactly one generation (§4.3). The host
// is expected to call Tick once per simulation step, after draining any
// pending paint commands via SetCell/SetGhost.
func (u *Universe) Tick() {
	u.tick()
}

// Close releases the Universe's resources. The core holds no handles
// outside Go's garbage-collected heap (no files, sockets, or GPU handles),
// so this is a documented no-op kept for symmetry with New and for hosts
// that wrap a Universe in a resource-managed lifecycle (§6).
func (u *Universe) Close() {}
