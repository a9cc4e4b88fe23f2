package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/storage"
)

// Level returns the definition for opts, serving it from the level cache when
// one is configured. Levels with an explicit id or name bypass the cache.
//
// Cache failures are logged and never fail the call: a read error falls back
// to generation and a write error still returns the generated level.
func (s *Service) Level(ctx context.Context, opts level.Options) (level.Definition, error) {
	width, height := opts.Dimensions()
	ctx, span := s.tracer.Start(ctx, "level.generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("level.seed", opts.Seed),
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
	)

	cacheable := s.levels != nil && opts.ID == "" && opts.Name == ""
	key := storage.LevelKey{Seed: opts.Seed, Width: width, Height: height}

	if cacheable {
		def, ok := s.cachedLevel(ctx, key)
		if ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			s.logger.DebugContext(ctx, "level cache hit", "id", def.ID, "seed", opts.Seed)
			return def, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	def := level.Generate(opts)
	if err := level.Validate(def); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid level")
		return level.Definition{}, fmt.Errorf("generate seed %d: %w", opts.Seed, err)
	}
	span.SetAttributes(
		attribute.String("level.id", def.ID),
		attribute.Int("level.path_length", len(def.CriticalPath)),
		attribute.Int("level.nodes", len(def.Nodes)),
		attribute.Int("level.artifacts", len(def.Artifacts)),
	)
	s.logger.InfoContext(ctx, "level generated",
		"id", def.ID,
		"seed", def.Seed,
		"width", def.Width,
		"height", def.Height,
		"path_length", len(def.CriticalPath),
	)

	if cacheable {
		s.storeLevel(ctx, key, def)
	}
	return def, nil
}

func (s *Service) cachedLevel(ctx context.Context, key storage.LevelKey) (level.Definition, bool) {
	rec, err := s.levels.GetLevel(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WarnContext(ctx, "level cache read failed", "seed", key.Seed, "error", err)
		}
		return level.Definition{}, false
	}
	def, err := level.Unmarshal(rec.Definition)
	if err != nil {
		s.logger.WarnContext(ctx, "level cache entry corrupt", "id", rec.ID, "error", err)
		return level.Definition{}, false
	}
	return def, true
}

func (s *Service) storeLevel(ctx context.Context, key storage.LevelKey, def level.Definition) {
	data, err := def.Marshal()
	if err != nil {
		s.logger.WarnContext(ctx, "level encode failed", "id", def.ID, "error", err)
		return
	}
	err = s.levels.PutLevel(ctx, storage.LevelRecord{ID: def.ID, Key: key, Definition: data})
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		s.logger.WarnContext(ctx, "level cache write failed", "id", def.ID, "error", err)
	}
}
