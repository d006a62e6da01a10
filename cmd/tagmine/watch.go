// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tagmine/internal/cache"
	"github.com/tomtom215/tagmine/internal/config"
	"github.com/tomtom215/tagmine/internal/dataset"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/metrics"
	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
	"github.com/tomtom215/tagmine/internal/supervisor"
	"github.com/tomtom215/tagmine/internal/supervisor/services"
)

// runWatch mines the dataset on an interval and prints every published
// result. With a watched list each publish also produces recommendations.
// Changes to the config file adjust the support threshold and log level
// without a restart.
func runWatch(ctx context.Context, env *environment) error {
	cfg := env.cfg
	if cfg.Input.DatasetPath == "" {
		return fmt.Errorf("%w: no dataset given (-dataset or input.dataset_path)", errUsage)
	}

	var watched []recommend.Entity
	if cfg.Input.WatchedPath != "" {
		var err error
		if watched, err = loadWatched(env); err != nil {
			return err
		}
	}

	miner, err := mining.NewMiner(cfg.MiningEngineConfig(), logging.Logger())
	if err != nil {
		return err
	}
	recCfg, err := cfg.RecommendEngineConfig()
	if err != nil {
		return err
	}

	var resultCache *cache.LRU[*mining.Result]
	if cfg.Service.CacheEntries > 0 {
		resultCache = cache.NewLRU[*mining.Result](cfg.Service.CacheEntries, cfg.Service.CacheTTL)
	}

	source := &dataset.FileSource{Path: cfg.Input.DatasetPath}
	store := mining.NewStore()
	svc, err := services.NewMiningService(source, miner, store, resultCache, services.MiningServiceConfig{
		RefreshInterval: cfg.Service.RefreshInterval,
		MineOnStartup:   cfg.Service.MineOnStartup,
		MinSupport:      cfg.Mining.MinSupport,
		RunTimeout:      cfg.Mining.RunTimeout,
	}, logging.Logger())
	if err != nil {
		return err
	}

	pub := &publisher{
		stdout:  env.stdout,
		path:    env.outputPath,
		source:  source,
		recCfg:  recCfg,
		watched: watched,
	}
	svc.OnPublish(func(res *mining.Result, version int64) {
		if err := pub.publish(ctx, res, version); err != nil {
			logging.Error().Err(err).Int64("version", version).Msg("failed to write published result")
		}
	})

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg.TreeConfig())
	if err != nil {
		return err
	}
	tree.AddMiningService(svc)
	if path := cfg.Metrics.TextfilePath; path != "" {
		tree.AddReportingService(services.NewTextfileService(path, 0, metrics.WriteTextfile, logging.Logger()))
	}

	if path := config.ResolvePath(env.loadOpts); path != "" {
		watchConfig(path, env.loadOpts, svc)
	}

	logging.Ctx(ctx).Info().
		Str("dataset", cfg.Input.DatasetPath).
		Dur("refresh_interval", cfg.Service.RefreshInterval).
		Int("cache_entries", cfg.Service.CacheEntries).
		Msg("watch mode started")

	err = tree.Serve(ctx)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		logging.Ctx(ctx).Info().Msg("watch mode stopped")
		return nil
	}
	return err
}

// watchConfig reloads the configuration when its file changes. An invalid
// file keeps the current settings.
func watchConfig(path string, opts config.LoadOptions, svc *services.MiningService) {
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load(opts)
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("ignoring invalid config change")
			return
		}
		applyReload(cfg, svc)
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("config file watch unavailable")
	}
}

// applyReload applies the settings that can change while running.
func applyReload(cfg *config.Config, svc *services.MiningService) {
	old := logging.GetLevel()
	logging.SetLevelString(cfg.Logging.Level)
	if level := logging.GetLevel(); level != old {
		logging.Info().Stringer("level", level).Msg("log level changed")
	}
	if err := svc.SetMinSupport(cfg.Mining.MinSupport); err != nil {
		logging.Warn().Err(err).Msg("ignoring invalid support threshold")
	}
}

// publisher renders published results. Writes are serialized.
type publisher struct {
	mu      sync.Mutex
	stdout  io.Writer
	path    string
	source  *dataset.FileSource
	recCfg  *recommend.Config
	watched []recommend.Entity
}

func (p *publisher) publish(ctx context.Context, res *mining.Result, version int64) error {
	out := recommendOutput{
		RunID:      res.RunID,
		Version:    version,
		MinSupport: res.MinSupport,
		Truncated:  res.Truncated,
		Maximal:    res.Maximal,
	}

	if p.watched != nil {
		ds := p.source.Last()
		if ds == nil {
			return errors.New("no dataset loaded")
		}
		var err error
		if out.Recommendation, err = recommendFor(ctx, p.recCfg, ds, res, p.watched); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		return writeJSON(p.stdout, out)
	}
	return writeFileAtomic(p.path, out)
}

// writeFileAtomic replaces path so readers never see a partial document.
func writeFileAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
