// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tagmine/internal/dataset"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/metrics"
	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
)

// mineOutput is the JSON document printed by the mine command.
type mineOutput struct {
	Result *mining.Result `json:"result"`
}

// recommendOutput is the JSON document printed by recommend and watch.
type recommendOutput struct {
	RunID          string                   `json:"run_id"`
	Version        int64                    `json:"version,omitempty"`
	MinSupport     float64                  `json:"min_support"`
	Truncated      bool                     `json:"truncated"`
	Maximal        []mining.FrequentItemset `json:"maximal"`
	Recommendation *recommend.Response      `json:"recommendation"`
}

func runMine(ctx context.Context, env *environment) error {
	ds, err := loadDataset(ctx, env)
	if err != nil {
		return err
	}
	res, err := mineDataset(ctx, env, ds)
	if err != nil {
		return err
	}
	return writeJSON(env.stdout, mineOutput{Result: res})
}

func runRecommend(ctx context.Context, env *environment) error {
	ds, err := loadDataset(ctx, env)
	if err != nil {
		return err
	}
	watched, err := loadWatched(env)
	if err != nil {
		return err
	}
	res, err := mineDataset(ctx, env, ds)
	if err != nil {
		return err
	}

	recCfg, err := env.cfg.RecommendEngineConfig()
	if err != nil {
		return err
	}
	resp, err := recommendFor(ctx, recCfg, ds, res, watched)
	if err != nil {
		return err
	}
	return writeJSON(env.stdout, recommendOutput{
		RunID:          res.RunID,
		MinSupport:     res.MinSupport,
		Truncated:      res.Truncated,
		Maximal:        res.Maximal,
		Recommendation: resp,
	})
}

func loadDataset(ctx context.Context, env *environment) (*dataset.Dataset, error) {
	path := env.cfg.Input.DatasetPath
	if path == "" {
		return nil, fmt.Errorf("%w: no dataset given (-dataset or input.dataset_path)", errUsage)
	}
	ds, err := dataset.Load(path, dataset.Options{})
	metrics.RecordDatasetLoad(err)
	if err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Info().
		Str("path", path).
		Int("entities", len(ds.Catalog)).
		Int("transactions", ds.Transactions.Len()).
		Bool("explicit_transactions", ds.Explicit).
		Msg("dataset loaded")
	return ds, nil
}

func loadWatched(env *environment) ([]recommend.Entity, error) {
	path := env.cfg.Input.WatchedPath
	if path == "" {
		return nil, fmt.Errorf("%w: no watched list given (-watched or input.watched_path)", errUsage)
	}
	return dataset.LoadWatched(path, dataset.Options{})
}

func mineDataset(ctx context.Context, env *environment, ds *dataset.Dataset) (*mining.Result, error) {
	miner, err := mining.NewMiner(env.cfg.MiningEngineConfig(), logging.Logger())
	if err != nil {
		return nil, err
	}
	ctx = logging.ContextWithNewRunID(ctx)
	res, err := miner.Mine(ctx, ds.Transactions)
	metrics.RecordMiningRun(res, err)
	if err != nil {
		return nil, err
	}
	if res.Truncated {
		logging.Ctx(ctx).Warn().Msg("mining run truncated, result is partial")
	}
	return res, nil
}

// recommendFor ranks res against watched using ds as the catalog. Watched
// entries given by title alone take their tags from the catalog.
func recommendFor(ctx context.Context, cfg *recommend.Config, ds *dataset.Dataset, res *mining.Result, watched []recommend.Entity) (*recommend.Response, error) {
	catalog, err := ds.NewCatalog()
	if err != nil {
		return nil, err
	}
	engine, err := recommend.NewEngine(cfg, catalog, logging.Logger())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := engine.RecommendFromResult(ctx, res, recommend.Request{Watched: catalog.ResolveWatched(watched)})
	metrics.RecordRecommendation(resp, time.Since(start), err)
	return resp, err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
