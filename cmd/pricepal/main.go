package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukeaslanian/PricePal/config"
	"github.com/lukeaslanian/PricePal/internal/delivery/console"
	"github.com/lukeaslanian/PricePal/internal/infrastructure/csvstore"
	"github.com/lukeaslanian/PricePal/internal/usecase"
)

var (
	formatA string
	formatB string
)

var rootCmd = &cobra.Command{
	Use:   "pricepal <catalog-a.csv> <catalog-b.csv>",
	Short: "Interactively compare grocery prices between two retailer catalogs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(args[0], args[1])
	},
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <dump.txt> <feed.csv>",
	Short: "Convert a raw Whole Foods scrape dump into a structured CSV feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSanitize(args[0], args[1])
	},
}

func runCompare(pathA, pathB string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	fmtA, err := csvstore.ParseFormat(formatA)
	if err != nil {
		return err
	}
	fmtB, err := csvstore.ParseFormat(formatB)
	if err != nil {
		return err
	}

	// Load-time failures are fatal: a malformed feed aborts the run.
	catalogA, err := csvstore.LoadCatalog(pathA, cfg.Stores.A, fmtA)
	if err != nil {
		log.Fatalf("Failed to load %s catalog: %v", cfg.Stores.A, err)
	}
	log.Printf("Loaded %d products from %s", catalogA.Len(), cfg.Stores.A)

	catalogB, err := csvstore.LoadCatalog(pathB, cfg.Stores.B, fmtB)
	if err != nil {
		log.Fatalf("Failed to load %s catalog: %v", cfg.Stores.B, err)
	}
	log.Printf("Loaded %d products from %s", catalogB.Len(), cfg.Stores.B)

	matcher := usecase.NewMatcherService(usecase.MatcherConfig{
		DefaultLimit:       cfg.Matcher.Limit,
		DefaultMinScore:    cfg.Matcher.MinScore,
		FuzzyEditDistance:  cfg.Matcher.FuzzyEditDistance,
		EnableDebugLogging: cfg.Matcher.Debug,
	})

	session := usecase.NewSessionService(matcher, catalogA, catalogB, usecase.SessionConfig{
		SkipToken: cfg.Session.SkipToken,
		DoneToken: cfg.Session.DoneToken,
		Limit:     cfg.Matcher.Limit,
		MinScore:  cfg.Matcher.MinScore,
	})

	ui := console.New(os.Stdin, os.Stdout, cfg.Stores.A, cfg.Stores.B, cfg.Report.Color)
	if err := ui.Run(session); err != nil {
		return err
	}

	report := usecase.NewReportService(cfg.Stores.A, cfg.Stores.B)
	ui.RenderReport(report.Summarize(session.Pairs()))
	return nil
}

func runSanitize(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer in.Close()

	rows, err := csvstore.SanitizeDump(in)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	defer out.Close()

	if err := csvstore.WriteFeed(out, rows, time.Now()); err != nil {
		return err
	}

	log.Printf("Converted %d products to %s", len(rows), outPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)

	rootCmd.Flags().StringVar(&formatA, "format-a", string(csvstore.FormatTraderJoes),
		"feed format for catalog A (traderjoes or wholefoods)")
	rootCmd.Flags().StringVar(&formatB, "format-b", string(csvstore.FormatWholeFoods),
		"feed format for catalog B (traderjoes or wholefoods)")
	rootCmd.AddCommand(sanitizeCmd)
}
