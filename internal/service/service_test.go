package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/runevault/internal/game"
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/storage"
	"github.com/samdwyer/runevault/internal/yield"
)

type memStore struct {
	mu      sync.Mutex
	levels  map[storage.LevelKey]storage.LevelRecord
	payouts []storage.PayoutRecord
	gets    int
	puts    int
	getErr  error
}

func newMemStore() *memStore {
	return &memStore{levels: make(map[storage.LevelKey]storage.LevelRecord)}
}

func (m *memStore) GetLevel(_ context.Context, key storage.LevelKey) (storage.LevelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return storage.LevelRecord{}, m.getErr
	}
	rec, ok := m.levels[key]
	if !ok {
		return storage.LevelRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (m *memStore) PutLevel(_ context.Context, rec storage.LevelRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if _, ok := m.levels[rec.Key]; ok {
		return storage.ErrAlreadyExists
	}
	m.levels[rec.Key] = rec
	return nil
}

func (m *memStore) RecordPayout(_ context.Context, rec storage.PayoutRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = int64(len(m.payouts) + 1)
	m.payouts = append(m.payouts, rec)
	return rec.ID, nil
}

func (m *memStore) ListPayouts(_ context.Context, levelID string, limit int) ([]storage.PayoutRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []storage.PayoutRecord
	for i := len(m.payouts) - 1; i >= 0 && len(out) < limit; i-- {
		if levelID == "" || m.payouts[i].LevelID == levelID {
			out = append(out, m.payouts[i])
		}
	}
	return out, nil
}

func (m *memStore) Close() error { return nil }

func newRecorder() (*tracetest.SpanRecorder, Option) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return rec, WithTracer(tp.Tracer("test"))
}

func spanNamed(t *testing.T, rec *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range rec.Ended() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("no ended span named %q", name)
	return nil
}

func boolAttr(span sdktrace.ReadOnlySpan, key string) (bool, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value.AsBool(), true
		}
	}
	return false, false
}

func TestLevelCacheAside(t *testing.T) {
	store := newMemStore()
	rec, tracer := newRecorder()
	svc := New(WithStore(store), tracer)
	ctx := context.Background()
	opts := level.Options{Seed: 1337, Width: 17, Height: 17}

	first, err := svc.Level(ctx, opts)
	if err != nil {
		t.Fatalf("Level() error: %v", err)
	}
	second, err := svc.Level(ctx, opts)
	if err != nil {
		t.Fatalf("Level() error: %v", err)
	}

	if store.puts != 1 {
		t.Errorf("puts = %d, want 1", store.puts)
	}
	if store.gets != 2 {
		t.Errorf("gets = %d, want 2", store.gets)
	}
	if first.ID != second.ID || len(first.Layout) != len(second.Layout) {
		t.Error("cached level differs from generated level")
	}

	ended := rec.Ended()
	if len(ended) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(ended))
	}
	if hit, _ := boolAttr(ended[0], "cache.hit"); hit {
		t.Error("first call reported a cache hit")
	}
	if hit, _ := boolAttr(ended[1], "cache.hit"); !hit {
		t.Error("second call did not report a cache hit")
	}
}

func TestLevelBypassesCacheForOverrides(t *testing.T) {
	store := newMemStore()
	svc := New(WithStore(store))

	def, err := svc.Level(context.Background(), level.Options{Seed: 4, ID: "trial"})
	if err != nil {
		t.Fatalf("Level() error: %v", err)
	}
	if def.ID != "trial" {
		t.Errorf("id = %q, want trial", def.ID)
	}
	if store.gets != 0 || store.puts != 0 {
		t.Errorf("store touched: gets=%d puts=%d", store.gets, store.puts)
	}
}

func TestLevelCacheReadFailureFallsBack(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk on fire")
	svc := New(WithStore(store))

	def, err := svc.Level(context.Background(), level.Options{Seed: 8})
	if err != nil {
		t.Fatalf("Level() error: %v", err)
	}
	if def.ID == "" {
		t.Error("no level returned")
	}
}

func TestLevelWithoutStore(t *testing.T) {
	svc := New()
	def, err := svc.Level(context.Background(), level.Options{Seed: 2})
	if err != nil {
		t.Fatalf("Level() error: %v", err)
	}
	if err := level.Validate(def); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestYieldUsesEngine(t *testing.T) {
	rec, tracer := newRecorder()
	svc := New(WithEngine(yield.Engine{ComboCap: 2}), tracer)

	got := svc.Yield(context.Background(), yield.Factors{
		BasePoints:       100,
		Rarity:           gamedata.RarityCommon,
		Combo:            10,
		IntegrityHonored: true,
	})
	if got.UtilityPoints != 120 {
		t.Errorf("UtilityPoints = %d, want 120", got.UtilityPoints)
	}
	spanNamed(t, rec, "yield.calculate")
}

func TestFinalizeRecordsPayout(t *testing.T) {
	store := newMemStore()
	rec, tracer := newRecorder()
	svc := New(WithStore(store), tracer)

	payout, err := svc.Finalize(context.Background(), RunSummary{
		LevelID:         "lvl",
		Strategy:        "ordered",
		TotalScore:      1000,
		RelicsCollected: 6,
		ElapsedSeconds:  60,
	})
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if payout.Tokens != 75 || payout.Tier != yield.TierExceptional {
		t.Errorf("payout = %+v, want 75 EXCEPTIONAL", payout)
	}

	listed, err := svc.Payouts(context.Background(), "lvl", 5)
	if err != nil {
		t.Fatalf("Payouts() error: %v", err)
	}
	if len(listed) != 1 || listed[0].Tokens != 75 {
		t.Errorf("ledger = %+v, want one 75-token payout", listed)
	}
	spanNamed(t, rec, "run.finalize")
}

func TestPayoutsNotConfigured(t *testing.T) {
	if _, err := New().Payouts(context.Background(), "", 5); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Payouts() error = %v, want ErrNotConfigured", err)
	}
}

func TestSimulate(t *testing.T) {
	store := newMemStore()
	rec, tracer := newRecorder()
	svc := New(WithStore(store), tracer)

	got, err := svc.Simulate(context.Background(), level.Options{Seed: 1337, Width: 17, Height: 17}, game.Config{Seed: 1, Strategy: game.StrategyGreedy})
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if got.Penalized == 0 {
		t.Error("greedy run was not penalized")
	}
	if len(store.payouts) != 1 {
		t.Fatalf("payouts = %d, want 1", len(store.payouts))
	}
	if store.payouts[0].Strategy != "greedy" {
		t.Errorf("strategy = %q, want greedy", store.payouts[0].Strategy)
	}
	spanNamed(t, rec, "level.generate")
	spanNamed(t, rec, "run.finalize")
}
