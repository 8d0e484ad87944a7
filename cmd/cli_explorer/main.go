package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"retire-explorer/internal/catalog"
	"retire-explorer/internal/config"
	"retire-explorer/internal/domain"
	"retire-explorer/internal/service"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	cat := catalog.Default()
	var shuffler service.Shuffler
	if cfg.ShuffleCombos {
		seed := cfg.ShuffleSeed
		if seed == 0 {
			if seed, err = service.NewSeed(); err != nil {
				log.Fatal(err)
			}
		}
		shuffler = service.NewSeededShuffler(seed)
	}

	scoreModel := service.NewScoreModel(cat, cfg.ScoringStrict)
	composer := service.NewOutcomeComposer(scoreModel, cat)
	generator := service.NewCombinationGenerator(cat, shuffler, logger)
	explorer := service.NewExplorerService(cat, scoreModel, composer, generator, logger)

	if err := runMenu(reader, os.Stdout, explorer); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}

var dimensionPrompts = map[domain.Dimension]string{
	domain.DimensionLocation:  "Where do you want to live?",
	domain.DimensionFamily:    "What is your family context?",
	domain.DimensionLifestyle: "What lifestyle do you envision?",
}

// runMenu mantiene la selección en memoria mientras dura la sesión.
func runMenu(reader *bufio.Reader, out io.Writer, explorer *service.ExplorerService) error {
	var sel domain.Selection
	for {
		fmt.Fprintln(out, "\n===== Explore Early Retirement =====")
		for i, dim := range domain.Dimensions() {
			current := "(not selected)"
			if opt := sel.Get(dim); opt != nil {
				current = opt.Title
			}
			fmt.Fprintf(out, "[%d] %s %s\n", i+1, dimensionPrompts[dim], current)
		}
		fmt.Fprintln(out, "[4] Show outcome")
		fmt.Fprintln(out, "[5] Pre-configured options")
		fmt.Fprintln(out, "[6] Reset selection")
		fmt.Fprintln(out, "[q] Quit")
		fmt.Fprint(out, "Choose: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1", "2", "3":
			idx, _ := strconv.Atoi(strings.TrimSpace(line))
			dim := domain.Dimensions()[idx-1]
			opt, err := pickOption(reader, out, explorer, dim)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return err
				}
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			sel.Select(dim, opt)
		case "4":
			outcome, err := explorer.Outcome(sel)
			if err != nil {
				fmt.Fprintf(out, "could not compute outcome: %v\n", err)
				continue
			}
			renderOutcome(out, outcome)
		case "5":
			for _, p := range explorer.Previews(nil) {
				renderPreview(out, p)
			}
		case "6":
			sel = domain.Selection{}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}

// pickOption acepta el número de la lista o el id (con sugerencias si hay un typo).
func pickOption(reader *bufio.Reader, out io.Writer, explorer *service.ExplorerService, dim domain.Dimension) (domain.Option, error) {
	options := explorer.Options(dim)
	fmt.Fprintf(out, "\n%s\n", dimensionPrompts[dim])
	for i, o := range options {
		fmt.Fprintf(out, "[%d] %s - %s\n", i+1, o.Title, o.Description)
	}
	fmt.Fprint(out, "Select: ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return domain.Option{}, err
	}
	choice := strings.TrimSpace(line)
	if idx, err := strconv.Atoi(choice); err == nil {
		if idx < 1 || idx > len(options) {
			return domain.Option{}, fmt.Errorf("invalid selection %d", idx)
		}
		return options[idx-1], nil
	}

	opt, err := explorer.Resolve(dim, choice)
	if err != nil {
		var uerr *domain.UnknownOptionError
		if errors.As(err, &uerr) && len(uerr.Suggestions) > 0 {
			return domain.Option{}, fmt.Errorf("unknown %s %q, did you mean %s?", dim, choice, strings.Join(uerr.Suggestions, ", "))
		}
		return domain.Option{}, err
	}
	return opt, nil
}

func renderOutcome(out io.Writer, outcome domain.Outcome) {
	fmt.Fprintf(out, "\n%s\n%s\n", outcome.Title, outcome.Description)
	for _, p := range domain.ScoreParameters() {
		score := outcome.Scores.Get(p.Field)
		fmt.Fprintf(out, "  %-15s %s%s %d/5 %-6s (%s ... %s)\n",
			p.Label,
			strings.Repeat("#", score),
			strings.Repeat(".", domain.MaxScore-score),
			score,
			domain.LevelFor(score),
			p.LowLabel,
			p.HighLabel,
		)
	}
	for _, c := range outcome.Considerations {
		fmt.Fprintf(out, "  - %s\n", c)
	}
}

func renderPreview(out io.Writer, p domain.CombinationPreview) {
	fmt.Fprintf(out, "\n%s [%s | %s | %s]\n", p.Country, p.LocationTag, p.FamilyContext.Title, p.Lifestyle.Title)
	for _, param := range domain.ScoreParameters() {
		fmt.Fprintf(out, "  %-15s %d %-6s %s\n", param.Label, p.Outcome.Scores.Get(param.Field), p.Levels[param.Field], p.Bands[param.Field])
	}
}
