package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"retire-explorer/internal/catalog"
	"retire-explorer/internal/config"
	"retire-explorer/internal/db"
	"retire-explorer/internal/domain"
	"retire-explorer/internal/repository"
	"retire-explorer/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

func main() {
	os.Exit(run())
}

// run separa el código de salida de os.Exit para que corran los defer.
func run() int {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config: %v", err)
		return 2
	}

	logger := zap.NewExample()
	defer logger.Sync()

	cat := catalog.Default()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Error("db connect", zap.Error(err))
			return 2
		}
		defer pool.Close()
		cat, err = overlayCatalog(ctx, repository.NewPgCatalogRepository(pool), cat)
		if err != nil {
			logger.Error("catalog overlay", zap.Error(err))
			return 2
		}
	}

	return check(os.Stdout, cat, cfg.ScoringStrict, logger)
}

// overlayCatalog prepara el esquema antes de leer, así una base vacía reporta el catálogo embebido.
func overlayCatalog(ctx context.Context, repo repository.CatalogRepository, base *catalog.Catalog) (*catalog.Catalog, error) {
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure catalog schema: %w", err)
	}
	return catalog.Load(ctx, repo, base)
}

// check imprime el reporte de consistencia y el resultado de cada combinación curada.
// Devuelve el código de salida.
func check(out io.Writer, cat *catalog.Catalog, strict bool, logger *zap.Logger) int {
	exitCode := 0

	problems := cat.Validate()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s[catalog]%s consistent\n", colorGreen, colorReset)
	}
	for _, p := range problems {
		fmt.Fprintf(out, "%s[catalog]%s %s\n", colorRed, colorReset, p)
		exitCode = 1
	}

	scoreModel := service.NewScoreModel(cat, strict)
	composer := service.NewOutcomeComposer(scoreModel, cat)
	generator := service.NewCombinationGenerator(cat, nil, logger)
	explorer := service.NewExplorerService(cat, scoreModel, composer, generator, logger)

	combos := explorer.Combinations(nil)
	if len(combos) != len(cat.Curated()) {
		fmt.Fprintf(out, "%s[combinations]%s %d of %d curated entries resolved\n", colorRed, colorReset, len(combos), len(cat.Curated()))
		exitCode = 1
	}

	totals := make(map[domain.ScoreField]int)
	previews := explorer.Previews(nil)
	for _, p := range previews {
		fmt.Fprintf(out, "%s[%s]%s %s: %s\n", colorCyan, p.ID, colorReset, p.Country, p.Outcome.Description)
		fmt.Fprintf(out, "  cost=%d pace=%d pollution=%d infrastructure=%d social=%d\n",
			p.Outcome.Scores.CostOfLiving,
			p.Outcome.Scores.PaceOfLife,
			p.Outcome.Scores.Pollution,
			p.Outcome.Scores.Infrastructure,
			p.Outcome.Scores.SocialLife,
		)
		for _, f := range domain.ScoreFields() {
			totals[f] += p.Outcome.Scores.Get(f)
		}
	}
	if len(previews) != len(combos) {
		fmt.Fprintf(out, "%s[scores]%s %d combinations could not be scored\n", colorRed, colorReset, len(combos)-len(previews))
		exitCode = 1
	}

	if n := len(previews); n > 0 {
		fmt.Fprintln(out, "==== Averages ====")
		for _, p := range domain.ScoreParameters() {
			fmt.Fprintf(out, "%s: %.2f/5\n", p.Label, float64(totals[p.Field])/float64(n))
		}
	}
	return exitCode
}
