// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// MatchMode controls how catalog entities are matched against an itemset.
type MatchMode int

const (
	// MatchSuperset matches entities whose tags contain every item of the set.
	MatchSuperset MatchMode = iota
	// MatchExact matches entities whose tags equal the set.
	MatchExact
)

// String returns the configuration name of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchSuperset:
		return "superset"
	case MatchExact:
		return "exact"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MatchMode) MarshalText() ([]byte, error) {
	if m != MatchSuperset && m != MatchExact {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMatchingMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MatchMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMatchMode parses "exact" or "superset", case-insensitively.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "superset":
		return MatchSuperset, nil
	case "exact":
		return MatchExact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMatchingMode, s)
	}
}

// Outcome classifies a recommendation response.
type Outcome int

const (
	// OutcomeRanked means itemsets were scored and ranked. Entries may still be
	// empty if every match was excluded or the caps are zero.
	OutcomeRanked Outcome = iota
	// OutcomeNoProfile means the request produced an empty profile.
	OutcomeNoProfile
	// OutcomeNoCandidates means there were no maximal itemsets to score.
	OutcomeNoCandidates
	// OutcomeNoAffinity means no maximal itemset shares an item with the profile.
	OutcomeNoAffinity
)

// String returns a stable name for the outcome, used in JSON and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeRanked:
		return "ranked"
	case OutcomeNoProfile:
		return "no_profile"
	case OutcomeNoCandidates:
		return "no_candidates"
	case OutcomeNoAffinity:
		return "no_affinity"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, c := range []Outcome{OutcomeRanked, OutcomeNoProfile, OutcomeNoCandidates, OutcomeNoAffinity} {
		if string(text) == c.String() {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Entity is a catalog entry that can be recommended.
type Entity struct {
	// Key is the identity key. When empty, the title is used.
	Key string `json:"key,omitempty"`

	// Title is the display title.
	Title string `json:"title"`

	// Year is the release year, if known.
	Year int `json:"year,omitempty"`

	// Attributes holds the descriptive fields the tags were derived from,
	// such as genre, director and star.
	Attributes map[string][]string `json:"attributes,omitempty"`

	// Tags is the entity's item set.
	Tags itemset.Itemset `json:"tags"`

	// Quality is the ranking score among matches, such as a critic rating.
	Quality float64 `json:"quality"`
}

// IdentityKey returns the normalized key used for exclusion and
// deduplication.
//
//nolint:gocritic // value receiver keeps Entity usable in map values
func (e Entity) IdentityKey() string {
	if e.Key != "" {
		return NormalizeKey(e.Key)
	}
	return NormalizeKey(e.Title)
}

// ScoredItemset is a maximal itemset with its affinity to a profile.
type ScoredItemset struct {
	Itemset itemset.Itemset `json:"itemset"`
	// Score is the number of items shared with the profile.
	Score int `json:"score"`
}

// RecommendationEntry is one ranked itemset and the entities chosen for it.
type RecommendationEntry struct {
	ScoredItemset
	Entities []Entity `json:"entities"`
}

// Request describes a recommendation request.
type Request struct {
	// RequestID is a unique identifier for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`

	// Watched lists the entities the user has already seen. Their tags form
	// the profile and their keys are excluded from the output.
	Watched []Entity `json:"watched"`

	// ExcludeKeys lists additional identity keys to exclude.
	ExcludeKeys []string `json:"exclude_keys,omitempty"`

	// Profile overrides the profile derived from Watched when non-empty.
	Profile itemset.Itemset `json:"profile,omitempty"`
}

// Response is the result of a recommendation request.
type Response struct {
	// Outcome classifies the response.
	Outcome Outcome `json:"outcome"`

	// Entries is the ordered list of itemsets with their entities.
	Entries []RecommendationEntry `json:"entries"`

	// TotalEmitted is the number of entities across all entries.
	TotalEmitted int `json:"total_emitted"`

	// Relevant is the number of itemsets with a positive score.
	Relevant int `json:"relevant"`

	// Profile is the profile the itemsets were scored against.
	Profile itemset.Itemset `json:"profile"`

	// Insights is set when insights are enabled.
	Insights *Insights `json:"insights,omitempty"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	MatchingMode MatchMode `json:"matching_mode"`
	LatencyMS    int64     `json:"latency_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	RequestCount int64            `json:"request_count"`
	ErrorCount   int64            `json:"error_count"`
	Emitted      int64            `json:"emitted"`
	Outcomes     map[string]int64 `json:"outcomes"`
}
