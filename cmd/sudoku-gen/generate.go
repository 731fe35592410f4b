package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sudokuforge/engine/internal/batch"
	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/infrastructure/storage"
	"github.com/sudokuforge/engine/internal/ports"
	"github.com/sudokuforge/engine/internal/refiner"
	"github.com/sudokuforge/engine/internal/solver"
	"github.com/sudokuforge/engine/internal/statistics"
	"github.com/sudokuforge/engine/internal/usecase"
)

// generateCmd runs a batch through usecase.Service and prints or saves
// whatever comes back.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of puzzles",
	RunE:  runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.Int("size", 9, "board side length (4, 6, 9, 12, or 16)")
	flags.String("difficulty", "medium", "comma-separated difficulty list (easy,medium,hard,expert,evil)")
	flags.String("variant", "classical", "classical|diagonal|color-constrained")
	flags.Int("count", 1, "number of puzzles to generate")
	flags.Int64("seed", 0, "base RNG seed (0 selects a random seed)")
	flags.Bool("refine", false, "iteratively refine each puzzle toward its target difficulty")
	flags.Bool("symmetric", false, "pair refinement add/remove steps through rotational symmetry")
	flags.Bool("include-solution", false, "print the solved grid alongside the puzzle")
	flags.String("out", "", "directory to persist generated puzzles as JSON (skipped when empty)")

	for _, name := range []string{"size", "difficulty", "variant", "count", "seed", "refine", "symmetric", "include-solution", "out"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	shape, ok := domain.StandardShape(viper.GetInt("size"))
	if !ok {
		return fmt.Errorf("unsupported board size %d", viper.GetInt("size"))
	}
	variant, ok := parseVariant(viper.GetString("variant"))
	if !ok {
		return fmt.Errorf("unsupported variant %q", viper.GetString("variant"))
	}
	difficulties := batch.ParseDifficultyList(viper.GetString("difficulty"))
	count := viper.GetInt("count")

	var seedPtr *int64
	if s := viper.GetInt64("seed"); s != 0 {
		seedPtr = &s
	}

	var store ports.Storage
	if dir := viper.GetString("out"); dir != "" {
		store = storage.NewFS(dir)
	}

	stats := statistics.New()
	svc := usecase.New(solver.New(), generator.New(), difficulty.New(), refiner.New(), store, stats)

	cfg := usecase.BatchConfig{
		Shape:           shape,
		Difficulties:    difficulties,
		Count:           count,
		Seed:            seedPtr,
		UseRefinement:   viper.GetBool("refine"),
		Symmetric:       viper.GetBool("symmetric"),
		IncludeSolution: viper.GetBool("include-solution"),
		Variant:         variant,
	}

	logger.WithFields(logrus.Fields{
		"size":       shape.Size,
		"count":      count,
		"difficulty": difficulties,
		"refine":     cfg.UseRefinement,
	}).Info("generating batch")

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	puzzles, err := svc.GenerateBatch(ctx, cfg, batch.Distribute)
	if err != nil {
		return err
	}
	logger.WithField("elapsed", time.Since(start)).Infof("generated %d puzzle(s)", len(puzzles))

	for _, gp := range puzzles {
		fmt.Printf("# puzzle %d — %s (target %s), %d clues, composite %.2f\n",
			gp.PuzzleNumber, gp.Rating.Classification, gp.Difficulty, gp.Rating.ClueCount, gp.Rating.CompositeScore)
		fmt.Print(gp.Puzzle.Format())
		if cfg.IncludeSolution {
			fmt.Println("solution:")
			fmt.Print(gp.Solution.Format())
		}
		fmt.Println()
	}

	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		agg := stats.Aggregate(d)
		if agg.Count == 0 {
			continue
		}
		logger.WithFields(logrus.Fields{
			"class":         d,
			"count":         agg.Count,
			"successRate":   agg.SuccessRate,
			"meanIter":      agg.MeanIterations,
			"meanComposite": agg.MeanCompositeScore,
		}).Info("batch summary")
	}

	return nil
}

// parseVariant matches a single variant token case-insensitively.
func parseVariant(s string) (domain.Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classical":
		return domain.Classical, true
	case "diagonal":
		return domain.Diagonal, true
	case "color-constrained":
		return domain.ColorConstrained, true
	default:
		return domain.Classical, false
	}
}
