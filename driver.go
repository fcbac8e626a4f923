// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jmdict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/tagstream"
)

// DefaultProgressInterval is the number of entries between progress logs.
const DefaultProgressInterval = 10000

// Grammar reads the records of one kind of dictionary release.
type Grammar[P any] interface {
	// ParseMetadata reads the document header.
	ParseMetadata(r *tagstream.Reader) (*metadata.Metadata, error)

	// OpenRecords reads up to the first record.
	OpenRecords(r *tagstream.Reader) error

	// HasNextEntry reports whether another record follows.
	HasNextEntry(r *tagstream.Reader) (bool, error)

	// NextEntry reads exactly one record.
	NextEntry(r *tagstream.Reader) (P, error)

	// CloseRecords reads the rest of the document after the last record.
	CloseRecords(r *tagstream.Reader) error
}

// Options are options for a Driver.
type Options struct {
	// Logger is the logger used by the driver. Logs are discarded if nil.
	Logger *slog.Logger

	// ProgressInterval is the number of entries between progress logs.
	// Defaults to DefaultProgressInterval.
	ProgressInterval int
}

// Driver runs a single pass over a dictionary release.
type Driver[P any] struct {
	grammar   Grammar[P]
	observers []Observer[P]

	log              *slog.Logger
	progressInterval int
}

// NewDriver returns a new driver. Observers are notified in the given order.
func NewDriver[P any](grammar Grammar[P], opts *Options, observers ...Observer[P]) *Driver[P] {
	d := &Driver[P]{
		grammar:          grammar,
		observers:        observers,
		log:              slog.New(slog.DiscardHandler),
		progressInterval: DefaultProgressInterval,
	}
	if opts != nil {
		if opts.Logger != nil {
			d.log = opts.Logger
		}
		if opts.ProgressInterval > 0 {
			d.progressInterval = opts.ProgressInterval
		}
	}
	return d
}

// Run reads the release from src and notifies the observers. Every
// observer's OnFinish is called even if the run fails. Outputs of a failed
// run are incomplete and must be discarded.
func (d *Driver[P]) Run(ctx context.Context, src tagstream.Source) (tally *Tally, err error) {
	start := time.Now()
	tally = NewTally()
	d.log.Info("starting conversion")

	defer func() {
		var errs []error
		for _, o := range d.observers {
			if ferr := o.OnFinish(ctx, err); ferr != nil {
				errs = append(errs, ferr)
			}
		}
		if ferr := errors.Join(errs...); ferr != nil {
			err = errors.Join(err, ferr)
		}
		if err != nil {
			d.log.Error("conversion failed",
				slog.String("error", err.Error()),
				slog.Int("entries", tally.Entries),
				slog.Duration("duration", time.Since(start)),
			)
			return
		}
		d.log.Info("conversion finished",
			slog.Int("entries", tally.Entries),
			slog.Duration("duration", time.Since(start)),
		)
	}()

	for _, o := range d.observers {
		if err := o.OnStart(ctx); err != nil {
			return tally, err
		}
	}

	r := tagstream.NewReader(src)
	meta, err := d.grammar.ParseMetadata(r)
	if err != nil {
		return tally, fmt.Errorf("reading metadata: %w", err)
	}
	d.log.Info("metadata",
		slog.Any("revisions", meta.Revisions),
		slog.Int("entities", len(meta.Entities)),
		slog.String("date", meta.Date),
	)

	for _, o := range d.observers {
		if err := o.BeforeEntries(ctx, meta); err != nil {
			return tally, err
		}
	}

	if err := d.grammar.OpenRecords(r); err != nil {
		return tally, fmt.Errorf("reading records: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		ok, err := d.grammar.HasNextEntry(r)
		if err != nil {
			return tally, fmt.Errorf("reading entry %d: %w", tally.Entries+1, err)
		}
		if !ok {
			break
		}

		entry, err := d.grammar.NextEntry(r)
		if err != nil {
			return tally, fmt.Errorf("reading entry %d: %w", tally.Entries+1, err)
		}
		tally.Entries++

		for _, o := range d.observers {
			if err := o.OnEntry(ctx, entry, meta, tally); err != nil {
				return tally, err
			}
		}

		if tally.Entries%d.progressInterval == 0 {
			d.log.Debug("progress", slog.Int("entries", tally.Entries))
		}
	}

	if err := d.grammar.CloseRecords(r); err != nil {
		return tally, fmt.Errorf("reading records: %w", err)
	}

	for _, o := range d.observers {
		if err := o.AfterEntries(ctx, meta, tally); err != nil {
			return tally, err
		}
	}

	return tally, nil
}

// ReadMetadata reads only the metadata of a release.
func ReadMetadata[P any](grammar Grammar[P], src tagstream.Source) (*metadata.Metadata, error) {
	meta, err := grammar.ParseMetadata(tagstream.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	return meta, nil
}
