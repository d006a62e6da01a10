// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/recommend"
)

// Dataset is a loaded catalog and the transactions mined from it.
type Dataset struct {
	// Catalog holds every entity with its tags resolved.
	Catalog []recommend.Entity

	// Transactions are the explicit transactions of the file, or the
	// catalog tag sets in file order when the file has none.
	Transactions *itemset.Collection

	// Explicit reports whether Transactions came from the file.
	Explicit bool
}

// Options controls how tags are derived.
type Options struct {
	// TagAttributes names the attributes that become tags for entities
	// without explicit tags. Empty means recommend.DefaultTagAttributes.
	TagAttributes []string
}

// document is the JSON dataset layout.
type document struct {
	Catalog      []recommend.Entity `json:"catalog"`
	Transactions [][]string         `json:"transactions,omitempty"`
}

// watchedDocument is the object form of a watched list.
type watchedDocument struct {
	Watched []recommend.Entity `json:"watched"`
}

// Load reads a dataset file. The format follows the extension: .json, .csv
// or .tsv.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		ds, err = Decode(f, opts)
	case ".csv":
		ds, err = DecodeDelimited(f, ',', opts)
	case ".tsv":
		ds, err = DecodeDelimited(f, '\t', opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a JSON dataset:
//
//	{
//	  "catalog": [
//	    {"key": "tt0111161", "title": "The Shawshank Redemption", "year": 1994,
//	     "quality": 9.3, "attributes": {"genre": ["Drama"], "director": ["Frank Darabont"]}}
//	  ],
//	  "transactions": [["Drama", "Frank Darabont"]]
//	}
//
// Unknown fields are rejected. "transactions" is optional.
func Decode(r io.Reader, opts Options) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	resolveTags(doc.Catalog, opts)
	if doc.Transactions == nil {
		return fromCatalog(doc.Catalog), nil
	}

	coll, err := itemset.FromStrings(doc.Transactions)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &Dataset{Catalog: doc.Catalog, Transactions: coll, Explicit: true}, nil
}

// LoadWatched reads a watched list. JSON files hold either an array of
// entities or {"watched": [...]}; .csv and .tsv files use the catalog
// columns.
func LoadWatched(path string, opts Options) ([]recommend.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open watched list: %w", err)
	}
	defer f.Close()

	var watched []recommend.Entity
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		watched, err = DecodeWatched(f, opts)
	case ".csv", ".tsv":
		comma := ','
		if ext == ".tsv" {
			comma = '\t'
		}
		var ds *Dataset
		if ds, err = DecodeDelimited(f, comma, opts); err == nil {
			watched = ds.Catalog
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("watched list %s: %w", path, err)
	}
	return watched, nil
}

// DecodeWatched reads a JSON watched list.
func DecodeWatched(r io.Reader, opts Options) ([]recommend.Entity, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		return nil, fmt.Errorf("decode watched list: %w", err)
	}

	var watched []recommend.Entity
	if first == '[' {
		err = json.NewDecoder(br).Decode(&watched)
	} else {
		var doc watchedDocument
		err = json.NewDecoder(br).Decode(&doc)
		watched = doc.Watched
	}
	if err != nil {
		return nil, fmt.Errorf("decode watched list: %w", err)
	}

	resolveTags(watched, opts)
	return watched, nil
}

// NewCatalog indexes the dataset's entities.
func (d *Dataset) NewCatalog() (*recommend.MemoryCatalog, error) {
	return recommend.NewMemoryCatalog(d.Catalog)
}

// FileSource loads the transactions of a dataset file on every call, for
// services that re-mine on a schedule. It keeps the last dataset it loaded.
type FileSource struct {
	Path    string
	Options Options

	mu   sync.Mutex
	last *Dataset
}

// Load implements the mining service source.
func (s *FileSource) Load(ctx context.Context) (*itemset.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := Load(s.Path, s.Options)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.last = ds
	s.mu.Unlock()
	return ds.Transactions, nil
}

// Last returns the most recently loaded dataset, or nil before the first
// successful Load.
func (s *FileSource) Last() *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func resolveTags(entities []recommend.Entity, opts Options) {
	for i := range entities {
		if entities[i].Tags.IsEmpty() {
			entities[i].Tags = recommend.TagsFromAttributes(entities[i].Attributes, opts.TagAttributes...)
		}
	}
}

func fromCatalog(catalog []recommend.Entity) *Dataset {
	txs := make([]itemset.Itemset, len(catalog))
	for i := range catalog {
		txs[i] = catalog[i].Tags
	}
	return &Dataset{Catalog: catalog, Transactions: itemset.NewCollection(txs...)}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
