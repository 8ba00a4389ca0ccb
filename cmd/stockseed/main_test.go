package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlubek/stockseed/catalog"
	"github.com/hlubek/stockseed/config"
	"github.com/hlubek/stockseed/generator"
	"github.com/hlubek/stockseed/report"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ProductCount:  5,
		SaleCount:     20,
		PurchaseCount: 10,
		SeedSampler:   42,
		SeedNumeric:   42,
		SeedFaker:     42,
		Output:        filepath.Join(t.TempDir(), "inserts.sql"),
		AsOf:          "2026-10-19T15:04:05Z",
	}
}

func TestRun(t *testing.T) {
	color.NoColor = true
	cfg := testConfig(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, report.NewConsoleTo(&out, &errOut, false)))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	script := string(data)
	assert.Equal(t, 5, strings.Count(script, "INSERT INTO products "))
	assert.Equal(t, 5, strings.Count(script, "INSERT INTO stock_levels "))
	assert.Equal(t, 20, strings.Count(script, "INSERT INTO sales "))
	assert.Equal(t, 10, strings.Count(script, "INSERT INTO purchases "))
	assert.Equal(t, 19, strings.Count(script, "INSERT INTO parameters "))
	assert.Contains(t, script, "-- Generated at: 19/10/2026 15:04:05")

	assert.Contains(t, out.String(), "Generating products...")
	assert.Contains(t, out.String(), "GENERATED DATA REPORT:")
	assert.Contains(t, out.String(), "SQL script written to "+cfg.Output)
	assert.Empty(t, errOut.String())
}

func TestRunIsReproducible(t *testing.T) {
	first, second := testConfig(t), testConfig(t)
	console := report.NewConsoleTo(&bytes.Buffer{}, &bytes.Buffer{}, true)

	require.NoError(t, run(context.Background(), first, console))
	require.NoError(t, run(context.Background(), second, console))

	a, err := os.ReadFile(first.Output)
	require.NoError(t, err)
	b, err := os.ReadFile(second.Output)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunWithoutActiveProducts(t *testing.T) {
	profile, err := catalog.Default()
	require.NoError(t, err)
	profile.Statuses = profile.Statuses[1:]
	data, err := profile.Marshal()
	require.NoError(t, err)
	profilePath := filepath.Join(t.TempDir(), "inactive.yaml")
	require.NoError(t, os.WriteFile(profilePath, data, 0o644))

	cfg := testConfig(t)
	cfg.Profile = profilePath
	console := report.NewConsoleTo(&bytes.Buffer{}, &bytes.Buffer{}, true)

	err = run(context.Background(), cfg, console)
	assert.True(t, errors.Is(err, generator.ErrEmptyDomain))
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when generation fails")

	cfg.SaleCount = 0
	require.NoError(t, run(context.Background(), cfg, console))
}

func TestRunReportsWriteErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output = filepath.Join(t.TempDir(), "missing", "inserts.sql")

	err := run(context.Background(), cfg, report.NewConsoleTo(&bytes.Buffer{}, &bytes.Buffer{}, true))
	assert.True(t, os.IsNotExist(err))
}
