// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tagmine/internal/config"
	"github.com/tomtom215/tagmine/internal/dataset"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
	"github.com/tomtom215/tagmine/internal/supervisor/services"
)

const moviesCSV = `title,year,rating_imdb,genre,language,star,director
Heat,1995.0,8.3,"['Crime', 'Drama']",['English'],['Al Pacino'],['Michael Mann']
Collateral,2004,7.5,"['Crime', 'Drama']",['English'],['Tom Cruise'],['Michael Mann']
Thief,1981,7.4,"['Crime', 'Drama']",['English'],['James Caan'],['Michael Mann']
Airplane!,1980,7.7,['Comedy'],['English'],['Leslie Nielsen'],['Jim Abrahams']
`

const watchedJSON = `[{"title": "heat "}]`

// isolate runs the test in an empty directory with no tagmine environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{"TAGMINE_CONFIG", "MIN_SUPPORT", "MATCHING_MODE", "LOG_LEVEL", "DATASET_PATH", "WATCHED_PATH", "METRICS_TEXTFILE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_Usage(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"stray argument", []string{"mine", "extra"}},
		{"mine without dataset", []string{"mine"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			if !errors.Is(err, errUsage) {
				t.Errorf("run(%v) error = %v, want errUsage", tt.args, err)
			}
		})
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"mine", "-h"}, &stdout, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("run(mine -h) error = %v, want flag.ErrHelp", err)
	}
}

func TestRun_Mine(t *testing.T) {
	isolate(t)
	dataset := writeInput(t, "movies.csv", moviesCSV)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"mine", "-dataset", dataset, "-min-support", "0.5"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	var out struct {
		Result struct {
			Transactions int     `json:"transactions"`
			MinSupport   float64 `json:"min_support"`
			Maximal      []struct {
				Itemset []string `json:"itemset"`
			} `json:"maximal"`
		} `json:"result"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout.String())
	}
	if out.Result.Transactions != 4 || out.Result.MinSupport != 0.5 {
		t.Errorf("transactions = %d, min_support = %v", out.Result.Transactions, out.Result.MinSupport)
	}
	// Crime, Drama and Michael Mann occur in 3 of 4 rows; language is not a tag.
	if len(out.Result.Maximal) != 1 {
		t.Fatalf("maximal = %+v, want one itemset", out.Result.Maximal)
	}
	want := []string{"Crime", "Drama", "Michael Mann"}
	got := out.Result.Maximal[0].Itemset
	if len(got) != len(want) {
		t.Fatalf("maximal itemset = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("maximal itemset = %v, want %v", got, want)
			break
		}
	}
}

func TestRun_Recommend(t *testing.T) {
	isolate(t)
	dataset := writeInput(t, "movies.csv", moviesCSV)
	watched := writeInput(t, "watched.json", watchedJSON)

	var stdout, stderr bytes.Buffer
	args := []string{"recommend", "-dataset", dataset, "-watched", watched, "-min-support", "0.5", "-max-per-itemset", "1"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	var out struct {
		Recommendation recommend.Response `json:"recommendation"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout.String())
	}
	resp := out.Recommendation
	if resp.Outcome != recommend.OutcomeRanked {
		t.Fatalf("outcome = %v, want ranked", resp.Outcome)
	}
	if resp.TotalEmitted != 1 || len(resp.Entries) != 1 {
		t.Fatalf("emitted = %d, entries = %d; want 1, 1", resp.TotalEmitted, len(resp.Entries))
	}
	// Heat is watched; Collateral has the best quality of the rest.
	if title := resp.Entries[0].Entities[0].Title; title != "Collateral" {
		t.Errorf("recommended %q, want Collateral", title)
	}
}

func TestRun_RecommendRequiresWatched(t *testing.T) {
	isolate(t)
	dataset := writeInput(t, "movies.csv", moviesCSV)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"recommend", "-dataset", dataset}, &stdout, &stderr)
	if !errors.Is(err, errUsage) {
		t.Errorf("run() error = %v, want errUsage", err)
	}
}

func TestRun_WatchWritesOutput(t *testing.T) {
	isolate(t)
	dataset := writeInput(t, "movies.csv", moviesCSV)
	outPath := filepath.Join(t.TempDir(), "latest.json")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	args := []string{"watch", "-dataset", dataset, "-min-support", "0.5", "-out", outPath}
	if err := run(ctx, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var out struct {
		Version int64 `json:"version"`
		Maximal []any `json:"maximal"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Version != 1 || len(out.Maximal) != 1 {
		t.Errorf("version = %d, maximal = %d; want 1, 1", out.Version, len(out.Maximal))
	}
}

func TestApplyReload(t *testing.T) {
	isolate(t)
	prev := logging.GetLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	logging.SetLevelString("info")

	miner, err := mining.NewMiner(mining.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	svc, err := services.NewMiningService(&dataset.FileSource{Path: "unused.csv"}, miner, mining.NewStore(), nil,
		services.MiningServiceConfig{MinSupport: 0.5}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	path := writeInput(t, "tagmine.yaml", "logging:\n  level: debug\nmining:\n  min_support: 0.25\n")
	cfg, err := config.Load(config.LoadOptions{Path: path})
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	applyReload(cfg, svc)

	if got := logging.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("log level = %v, want debug", got)
	}
	if got := svc.MinSupport(); got != 0.25 {
		t.Errorf("MinSupport() = %v, want 0.25", got)
	}
}
