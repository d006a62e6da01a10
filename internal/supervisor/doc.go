// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

/*
Package supervisor runs the long-lived services of the watch mode under
suture v4.

# Overview

	RootSupervisor ("tagmine")
	├── MiningSupervisor ("mining-layer")
	│   └── MiningService (reload dataset, mine, publish)
	└── ReportingSupervisor ("reporting-layer")
	    └── TextfileService (Prometheus textfile export)

A crashed service is restarted with backoff. The reporting layer restarts
independently, so an export failure never interrupts mining.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, cfg.TreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMiningService(miningSvc)
	tree.AddReportingService(textfileSvc)

	return tree.Serve(ctx)

Events (starts, failures, backoff) are logged through sutureslog into the
zerolog pipeline.

# Testing

MockService is a controllable suture.Service for exercising restart and
shutdown behavior.
*/
package supervisor
