package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/runevault/internal/game"
	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/storage"
	"github.com/samdwyer/runevault/internal/yield"
)

// Yield settles one collection event with the configured engine.
func (s *Service) Yield(ctx context.Context, f yield.Factors) yield.Result {
	_, span := s.tracer.Start(ctx, "yield.calculate")
	defer span.End()

	res := s.engine.Calculate(f)
	span.SetAttributes(
		attribute.String("yield.rarity", string(f.Rarity)),
		attribute.Int("yield.combo", f.Combo),
		attribute.Bool("yield.integrity", f.IntegrityHonored),
		attribute.Int("yield.points", res.UtilityPoints),
		attribute.Int("yield.tokens", res.TokenUnits),
	)
	if !f.IntegrityHonored {
		s.logger.InfoContext(ctx, "integrity penalty applied", "rarity", f.Rarity, "points", res.UtilityPoints)
	}
	return res
}

// RunSummary identifies a finished run for Finalize.
type RunSummary struct {
	LevelID         string
	Strategy        string
	TotalScore      float64
	RelicsCollected int
	ElapsedSeconds  float64
}

// Finalize computes the run payout and records it in the ledger when one is
// configured.
func (s *Service) Finalize(ctx context.Context, run RunSummary) (yield.Payout, error) {
	ctx, span := s.tracer.Start(ctx, "run.finalize")
	defer span.End()

	payout := yield.FinalizeRunPayout(run.TotalScore, run.RelicsCollected, run.ElapsedSeconds)
	span.SetAttributes(
		attribute.String("run.level_id", run.LevelID),
		attribute.Float64("run.tokens", payout.Tokens),
		attribute.String("run.tier", string(payout.Tier)),
	)

	if s.payouts != nil {
		id, err := s.payouts.RecordPayout(ctx, storage.PayoutRecord{
			LevelID:         run.LevelID,
			Strategy:        run.Strategy,
			Score:           int(run.TotalScore),
			RelicsCollected: payout.RelicsCollected,
			ElapsedSeconds:  payout.ElapsedSeconds,
			Tokens:          payout.Tokens,
			Tier:            string(payout.Tier),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "record payout")
			return payout, fmt.Errorf("record payout: %w", err)
		}
		span.SetAttributes(attribute.Int64("run.payout_id", id))
	}

	s.logger.InfoContext(ctx, "run finalized",
		"level_id", run.LevelID,
		"score", run.TotalScore,
		"tokens", payout.Tokens,
		"tier", payout.Tier,
	)
	return payout, nil
}

// Simulate plays the level for opts with cfg and finalizes the result. The
// service's engine is used unless cfg already carries a combo cap.
func (s *Service) Simulate(ctx context.Context, opts level.Options, cfg game.Config) (game.Result, error) {
	def, err := s.Level(ctx, opts)
	if err != nil {
		return game.Result{}, err
	}
	if cfg.Engine == (yield.Engine{}) {
		cfg.Engine = s.engine
	}

	result, err := game.Simulate(ctx, &def, cfg)
	if err != nil {
		return game.Result{}, fmt.Errorf("simulate %s: %w", def.ID, err)
	}

	payout, err := s.Finalize(ctx, RunSummary{
		LevelID:         def.ID,
		Strategy:        result.Strategy,
		TotalScore:      float64(result.Score),
		RelicsCollected: result.Collected,
		ElapsedSeconds:  result.Elapsed,
	})
	if err != nil {
		return result, err
	}
	result.Payout = payout
	return result, nil
}

// Payouts lists recent ledger entries, newest first. An empty levelID lists
// all levels.
func (s *Service) Payouts(ctx context.Context, levelID string, limit int) ([]storage.PayoutRecord, error) {
	if s.payouts == nil {
		return nil, ErrNotConfigured
	}
	return s.payouts.ListPayouts(ctx, levelID, limit)
}
