// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

/*
Package services provides suture.Service implementations for the watch mode.

# Available Services

MiningService (mining layer):
  - Reloads the dataset through a Source on every tick or Trigger
  - Looks up the result cache by collection fingerprint and threshold
  - Mines on a miss and publishes to a mining.Store
  - Runs OnPublish hooks after each publish

TextfileService (reporting layer):
  - Writes the Prometheus registry to a textfile on an interval
  - Returns write errors so the supervisor restarts it with backoff

# Error Handling

MiningService never returns on a failed refresh. The error is logged and
the next tick tries again, so a dataset that is briefly unreadable does not
take the service down. Serve returns only when its context ends.

# Example

	svc, err := services.NewMiningService(
	    &dataset.FileSource{Path: cfg.Input.DatasetPath},
	    miner, store, resultCache,
	    services.MiningServiceConfig{
	        RefreshInterval: cfg.Service.RefreshInterval,
	        MineOnStartup:   true,
	        MinSupport:      cfg.Mining.MinSupport,
	    },
	    logger,
	)
	tree.AddMiningService(svc)
*/
package services
