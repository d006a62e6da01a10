// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

/*
Package cache provides a generic LRU cache with TTL expiry.

The watch service keeps recent mining results here, keyed by ResultKey, so an
unchanged dataset is not mined twice at the same threshold:

	results := cache.NewLRU[*mining.Result](16, 24*time.Hour)

	key := cache.ResultKey(coll.Fingerprint(), minSupport)
	if res, ok := results.Get(key); ok {
	    return res, nil
	}

# Thread Safety

All methods are safe for concurrent use. Get reorders the recency list, so
every operation takes the same mutex.
*/
package cache
