package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/samdwyer/runevault/internal/config"
	"github.com/samdwyer/runevault/internal/game"
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/service"
	"github.com/samdwyer/runevault/internal/ui"
	"github.com/samdwyer/runevault/internal/yield"
)

const usage = `usage: runevault <command> [flags]

commands:
  generate   generate a level definition as JSON
  validate   check a level definition file
  yield      score one artifact pickup
  finalize   compute a run payout
  simulate   play a generated level and settle the payout
  payouts    list recorded payouts
  schema     write the JSON schema of a level definition
  preview    draw a level in the terminal`

var errUsage = errors.New(usage)

type app struct {
	svc *service.Service
	cfg config.Config
	out io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		return a.generate(ctx, rest)
	case "validate":
		return a.validate(rest)
	case "yield":
		return a.yield(ctx, rest)
	case "finalize":
		return a.finalize(ctx, rest)
	case "simulate":
		return a.simulate(ctx, rest)
	case "payouts":
		return a.payouts(ctx, rest)
	case "schema":
		return a.schema(rest)
	case "preview":
		return a.preview(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

// levelFlags registers the flags shared by commands that generate a level.
func (a *app) levelFlags(fs *flag.FlagSet) *level.Options {
	opts := &level.Options{}
	fs.Int64Var(&opts.Seed, "seed", 0, "generation seed")
	fs.IntVar(&opts.Width, "width", a.cfg.Width, "grid width (odd, >= 11)")
	fs.IntVar(&opts.Height, "height", a.cfg.Height, "grid height (odd, >= 11)")
	return opts
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	opts := a.levelFlags(fs)
	fs.StringVar(&opts.ID, "id", "", "level id override")
	fs.StringVar(&opts.Name, "name", "", "level name override")
	pretty := fs.Bool("pretty", false, "indent output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	def, err := a.svc.Level(ctx, *opts)
	if err != nil {
		return err
	}
	return a.writeJSON(def, *pretty)
}

func (a *app) validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	in := fs.String("in", "", "level definition file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	def, err := level.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode level: %w", err)
	}
	if err := level.Validate(def); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s ok\n", def.ID)
	return nil
}

func (a *app) yield(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("yield", flag.ContinueOnError)
	base := fs.Float64("base", 100, "base points")
	rarity := fs.String("rarity", string(gamedata.RarityCommon), "rarity tier: common, rare, epic or mythic")
	combo := fs.Int("combo", 0, "current combo count")
	penalized := fs.Bool("penalized", false, "prerequisites were skipped")
	if err := fs.Parse(args); err != nil {
		return err
	}
	r := gamedata.Rarity(*rarity)
	if r.Tier() < 0 {
		return fmt.Errorf("unknown rarity %q", *rarity)
	}
	if *base < 0 || *combo < 0 {
		return errors.New("base and combo must be non-negative")
	}

	res := a.svc.Yield(ctx, yield.Factors{
		BasePoints:       *base,
		Rarity:           r,
		Combo:            *combo,
		IntegrityHonored: !*penalized,
	})
	return a.writeJSON(res, true)
}

func (a *app) finalize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("finalize", flag.ContinueOnError)
	run := service.RunSummary{Strategy: "manual"}
	fs.StringVar(&run.LevelID, "level", "adhoc", "level id recorded with the payout")
	fs.Float64Var(&run.TotalScore, "score", 0, "total run score")
	fs.IntVar(&run.RelicsCollected, "relics", 0, "relics collected")
	fs.Float64Var(&run.ElapsedSeconds, "seconds", 0, "elapsed run time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if run.TotalScore < 0 || run.RelicsCollected < 0 || run.ElapsedSeconds < 0 {
		return errors.New("score, relics and seconds must be non-negative")
	}

	payout, err := a.svc.Finalize(ctx, run)
	if err != nil {
		return err
	}
	return a.writeJSON(payout, true)
}

func (a *app) simulate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	opts := a.levelFlags(fs)
	runSeed := fs.Int64("run-seed", 0, "obstacle roll seed")
	strategy := fs.String("strategy", game.StrategyOrdered.String(), "ordered or greedy")
	events := fs.Bool("events", false, "include the event log")
	noObstacles := fs.Bool("no-obstacles", false, "disable obstacle rolls")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, ok := game.ParseStrategy(*strategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", *strategy)
	}

	result, err := a.svc.Simulate(ctx, *opts, game.Config{Seed: *runSeed, Strategy: s, NoObstacles: *noObstacles})
	if err != nil {
		return err
	}
	if !*events {
		result.Events = nil
	}
	return a.writeJSON(result, true)
}

func (a *app) payouts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payouts", flag.ContinueOnError)
	levelID := fs.String("level", "", "only payouts for this level id")
	limit := fs.Int("limit", 20, "maximum rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := a.svc.Payouts(ctx, *levelID, *limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%d\t%.2f\t%s\n", r.ID, r.LevelID, r.Strategy, r.Score, r.Tokens, r.Tier)
	}
	return nil
}

func (a *app) schema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	outPath := fs.String("out", "", "write the schema to this path instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')
	if *outPath == "" {
		_, err := a.out.Write(data)
		return err
	}
	return writeFileAtomic(*outPath, data)
}

func (a *app) preview(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	opts := a.levelFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	def, err := a.svc.Level(ctx, *opts)
	if err != nil {
		return err
	}
	return ui.Preview(&def)
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(level.Definition))
	schema.Title = "Runevault Level Definition"
	schema.Description = "A generated vault level: grid layout, puzzle nodes, artifacts, spawn profile and theme"
	return schema
}

func writeFileAtomic(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}

func (a *app) writeJSON(v any, pretty bool) error {
	enc := json.NewEncoder(a.out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
