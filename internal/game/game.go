package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/rng"
	"github.com/samdwyer/runevault/internal/telemetry"
	"github.com/samdwyer/runevault/internal/world"
	"github.com/samdwyer/runevault/internal/yield"
)

// Event is one thing that happened during a run.
type Event struct {
	Kind     EventKind     `json:"kind"`
	ID       string        `json:"id,omitempty"`
	Position world.Point   `json:"position"`
	Elapsed  float64       `json:"elapsed"`
	Combo    int           `json:"combo"`
	Yield    *yield.Result `json:"yield,omitempty"`
}

// Result summarizes a finished run.
type Result struct {
	LevelID    string       `json:"levelId"`
	Strategy   string       `json:"strategy"`
	Events     []Event      `json:"events"`
	Collected  int          `json:"collected"`
	Penalized  int          `json:"penalized"`
	Score      int          `json:"score"`
	Steps      int          `json:"steps"`
	Elapsed    float64      `json:"elapsed"`
	Milestones []int        `json:"milestones"`
	Payout     yield.Payout `json:"payout"`
}

// Run holds the state of one simulated session. A Run is single use and not
// safe for concurrent use.
type Run struct {
	def       *level.Definition
	grid      *world.Layout
	graph     *level.DependencyGraph
	cfg       Config
	src       *rng.Source
	obstacles *gamedata.ObstacleRegistry

	state         State
	pos           world.Point
	done          map[level.Ref]bool
	combo         int
	chance        float64
	sinceRoll     int
	nextMilestone int
	result        Result
}

// New prepares a run over def.
func New(def *level.Definition, cfg Config) (*Run, error) {
	grid, err := def.Grid()
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	graph, err := level.NewDependencyGraph(def.Nodes, def.Artifacts)
	if err != nil {
		return nil, err
	}

	obstacles := gamedata.NewObstacleRegistry(def.Spawn.Obstacles)
	if len(def.Spawn.Obstacles) == 0 {
		if obstacles, err = gamedata.LoadObstacleRegistry(); err != nil {
			return nil, fmt.Errorf("load obstacles: %w", err)
		}
	}

	cfg = cfg.withDefaults()
	return &Run{
		def:       def,
		grid:      grid,
		graph:     graph,
		cfg:       cfg,
		src:       rng.New(cfg.Seed),
		obstacles: obstacles,
		state:     StateWalking,
		pos:       def.Start,
		done:      make(map[level.Ref]bool),
		chance:    cfg.ObstacleChance,
		result: Result{
			LevelID:    def.ID,
			Strategy:   cfg.Strategy.String(),
			Milestones: []int{},
		},
	}, nil
}

// State returns the current phase of the run.
func (r *Run) State() State {
	return r.state
}

// Play runs the session to the exit and settles the payout.
func (r *Run) Play(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "run.simulate")
	defer span.End()

	targets, err := r.targets()
	if err != nil {
		return Result{}, err
	}

	for _, ref := range targets {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		r.travel(r.graph.Position(ref))
		if ref.Kind == level.RefNode {
			r.solve(ref)
		} else {
			r.collect(ref)
		}
	}
	r.travel(r.def.Exit)
	r.finish()

	span.SetAttributes(
		attribute.String("run.strategy", r.result.Strategy),
		attribute.Int("run.collected", r.result.Collected),
		attribute.Int("run.penalized", r.result.Penalized),
		attribute.Int("run.score", r.result.Score),
		attribute.Float64("run.elapsed", r.result.Elapsed),
	)
	return r.result, nil
}

// targets returns the visit order for the configured strategy.
func (r *Run) targets() ([]level.Ref, error) {
	order, err := r.graph.SolveOrder()
	if err != nil {
		return nil, err
	}
	if r.cfg.Strategy != StrategyGreedy {
		return order, nil
	}

	targets := make([]level.Ref, 0, len(order))
	for i := range r.def.Artifacts {
		targets = append(targets, level.Ref{Kind: level.RefArtifact, Index: i})
	}
	for _, ref := range order {
		if ref.Kind == level.RefNode {
			targets = append(targets, ref)
		}
	}
	return targets, nil
}

// travel walks the shortest route to dest, rolling for obstacles every
// ObstacleInterval steps.
func (r *Run) travel(dest world.Point) {
	r.state = StateWalking
	route := world.ShortestPath(r.grid, r.pos, dest)
	for _, p := range route[1:] {
		r.pos = p
		r.result.Steps++
		r.result.Elapsed += r.cfg.StepSeconds

		r.sinceRoll++
		if r.sinceRoll == r.cfg.ObstacleInterval {
			r.sinceRoll = 0
			r.rollObstacle()
		}
	}
	r.pos = dest
}

func (r *Run) rollObstacle() {
	if r.cfg.NoObstacles || r.src.Float64() >= r.chance {
		return
	}
	o := r.obstacles.SpawnRandom(r.src)
	if o == nil {
		return
	}
	r.result.Elapsed += o.TimePenalty
	if o.BreaksCombo {
		r.combo = 0
	}
	r.emit(Event{Kind: EventObstacle, ID: o.ID})
}

func (r *Run) solve(ref level.Ref) {
	r.state = StateSolving
	r.result.Elapsed += r.cfg.SolveSeconds
	r.done[ref] = true
	r.emit(Event{Kind: EventSolve, ID: r.graph.ID(ref)})
}

// collect settles one pickup. Integrity is honored only when every transitive
// prerequisite was completed earlier in the run.
func (r *Run) collect(ref level.Ref) {
	r.state = StateCollecting
	a := r.def.Artifacts[ref.Index]

	honored := true
	for _, req := range r.graph.Closure(ref) {
		if !r.done[req] {
			honored = false
			break
		}
	}

	res := r.cfg.Engine.Calculate(yield.Factors{
		BasePoints:       float64(a.RewardUnits) * r.cfg.PointsPerUnit,
		Rarity:           a.Rarity,
		Combo:            r.combo,
		IntegrityHonored: honored,
	})
	r.emit(Event{Kind: EventCollect, ID: a.ID, Yield: &res})

	r.combo++
	r.done[ref] = true
	r.result.Collected++
	if !honored {
		r.result.Penalized++
	}
	r.result.Score += res.UtilityPoints
	r.checkMilestones()
}

// checkMilestones records every threshold the score has crossed and
// escalates the obstacle chance for each.
func (r *Run) checkMilestones() {
	ms := r.def.Spawn.Milestones
	for r.nextMilestone < len(ms) && r.result.Score >= ms[r.nextMilestone] {
		threshold := ms[r.nextMilestone]
		r.nextMilestone++
		r.chance += r.cfg.MilestoneEscalation
		r.result.Milestones = append(r.result.Milestones, threshold)
		r.emit(Event{Kind: EventMilestone, ID: fmt.Sprintf("score-%d", threshold)})
	}
}

func (r *Run) finish() {
	r.state = StateFinished
	r.emit(Event{Kind: EventExit})
	r.result.Payout = yield.FinalizeRunPayout(float64(r.result.Score), r.result.Collected, r.result.Elapsed)
}

func (r *Run) emit(ev Event) {
	ev.Position = r.pos
	ev.Elapsed = r.result.Elapsed
	ev.Combo = r.combo
	r.result.Events = append(r.result.Events, ev)
}

// Simulate plays def once with cfg.
func Simulate(ctx context.Context, def *level.Definition, cfg Config) (Result, error) {
	run, err := New(def, cfg)
	if err != nil {
		return Result{}, err
	}
	return run.Play(ctx)
}
