package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/hlubek/stockseed/catalog"
	"github.com/hlubek/stockseed/config"
	"github.com/hlubek/stockseed/generator"
	"github.com/hlubek/stockseed/randsrc"
	"github.com/hlubek/stockseed/report"
	"github.com/hlubek/stockseed/repository"
	"github.com/hlubek/stockseed/sqlscript"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generates a synthetic inventory dataset as an ordered SQL insert script.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEvery option can also be set as STOCKSEED_<OPTION> (e.g. STOCKSEED_SALE_COUNT).\n")
	}
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		report.NewConsole(false).Error("%v", err)
		os.Exit(2)
	}

	console := report.NewConsole(cfg.Quiet)
	if err := run(context.Background(), cfg, console); err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, console *report.Console) error {
	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	asOf, err := cfg.Clock(time.Now)
	if err != nil {
		return err
	}

	console.Step("Generating synthetic data for the inventory control system (%s)", cfg.Seeds())
	g := generator.New(profile, randsrc.New(cfg.Seeds()), asOf)
	ds, err := g.Generate(generator.Options{
		Products:  cfg.ProductCount,
		Sales:     cfg.SaleCount,
		Purchases: cfg.PurchaseCount,
		Progress: func(phase string) {
			console.Step("Generating %s...", phase)
		},
	})
	if err != nil {
		if errors.Is(err, generator.ErrEmptyDomain) {
			return fmt.Errorf("%w (try more products or a profile with ACTIVE weight)", err)
		}
		return err
	}

	console.Step("Building SQL insert statements...")
	groups, err := sqlscript.SerializeDataset(ds)
	if err != nil {
		return err
	}
	if err := sqlscript.WriteFile(cfg.Output, groups, sqlscript.Header{GeneratedAt: ds.AsOf, Seeds: ds.Seeds}); err != nil {
		return err
	}

	if !cfg.Quiet && !cfg.NoSummary {
		report.Print(console.Out(), report.Summarize(ds))
		fmt.Fprintln(console.Out())
	}
	console.Success("SQL script written to %s", cfg.Output)

	if cfg.DatabaseURL != "" {
		if err := apply(ctx, cfg.DatabaseURL, groups, console); err != nil {
			return err
		}
	}
	return nil
}

func loadProfile(path string) (*catalog.Profile, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func apply(ctx context.Context, dsn string, groups []sqlscript.Group, console *report.Console) error {
	console.Step("Replaying script into the database...")
	db, err := repository.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.CreateSchema(ctx, db); err != nil {
		return err
	}
	if err := repository.ApplyScript(ctx, db, sqlscript.Statements(groups)); err != nil {
		return err
	}
	counts, err := repository.CountRows(ctx, db)
	if err != nil {
		return err
	}
	for _, table := range repository.Tables {
		console.Step("%s: %d rows", table, counts[table])
	}
	console.Success("Database loaded")
	return nil
}
