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
	"fmt"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/sink"
)

// ConvertFunc converts a parsed entry into an output record.
type ConvertFunc[P, R any] func(entry P, meta *metadata.Metadata) (R, error)

// SinkOpener opens the sinks of a ConvertObserver.
type SinkOpener func() ([]*sink.Sink, error)

// CreateSinks returns a SinkOpener that creates a file for each spec. If
// creating any of the files fails the ones already created are closed.
func CreateSinks(specs []sink.Spec) SinkOpener {
	return func() ([]*sink.Sink, error) {
		sinks := make([]*sink.Sink, 0, len(specs))
		for _, spec := range specs {
			s, err := sink.Create(spec)
			if err != nil {
				for _, s := range sinks {
					_ = s.Close()
				}
				return nil, err
			}
			sinks = append(sinks, s)
		}
		return sinks, nil
	}
}

// ConvertObserver converts every entry and writes it to its sinks.
type ConvertObserver[P any, R sink.Record[R]] struct {
	convert ConvertFunc[P, R]
	open    SinkOpener
	header  sink.Header

	fanout *sink.FanOut[R]
}

// NewConvertObserver returns a new ConvertObserver. The header's metadata
// fields are filled in from the release metadata.
func NewConvertObserver[P any, R sink.Record[R]](convert ConvertFunc[P, R], header sink.Header, open SinkOpener) *ConvertObserver[P, R] {
	return &ConvertObserver[P, R]{
		convert: convert,
		open:    open,
		header:  header,
	}
}

// Sinks returns the open sinks.
func (o *ConvertObserver[P, R]) Sinks() []*sink.Sink {
	if o.fanout == nil {
		return nil
	}
	return o.fanout.Sinks()
}

// OnStart opens the sinks.
func (o *ConvertObserver[P, R]) OnStart(context.Context) error {
	sinks, err := o.open()
	if err != nil {
		return fmt.Errorf("opening outputs: %w", err)
	}
	o.fanout = sink.NewFanOut[R](sinks...)
	return nil
}

// BeforeEntries writes the header of every sink.
func (o *ConvertObserver[P, R]) BeforeEntries(_ context.Context, meta *metadata.Metadata) error {
	h := o.header
	h.DictDate = meta.Date
	h.DictRevisions = meta.Revisions
	h.Tags = meta.Entities
	if err := o.fanout.WriteHeader(h); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// OnEntry converts the entry and writes the record to the sinks that accept
// it.
func (o *ConvertObserver[P, R]) OnEntry(_ context.Context, entry P, meta *metadata.Metadata, tally *Tally) error {
	record, err := o.convert(entry, meta)
	if err != nil {
		return err
	}
	tally.Add(record.AllLanguages(), record.IsCommon())
	if _, err := o.fanout.Write(record); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// AfterEntries completes every sink's document.
func (o *ConvertObserver[P, R]) AfterEntries(context.Context, *metadata.Metadata, *Tally) error {
	if err := o.fanout.Finish(); err != nil {
		return fmt.Errorf("finishing outputs: %w", err)
	}
	return nil
}

// OnFinish closes the sinks.
func (o *ConvertObserver[P, R]) OnFinish(context.Context, error) error {
	if o.fanout == nil {
		return nil
	}
	if err := o.fanout.Close(); err != nil {
		return fmt.Errorf("closing outputs: %w", err)
	}
	return nil
}
