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

	"github.com/ianlewis/go-jmdict/metadata"
)

// Observer is notified of the progress of a Driver run.
type Observer[P any] interface {
	// OnStart is called before anything is read.
	OnStart(ctx context.Context) error

	// BeforeEntries is called once the metadata has been read.
	BeforeEntries(ctx context.Context, meta *metadata.Metadata) error

	// OnEntry is called for every parsed entry in document order.
	OnEntry(ctx context.Context, entry P, meta *metadata.Metadata, tally *Tally) error

	// AfterEntries is called after the last entry has been read.
	AfterEntries(ctx context.Context, meta *metadata.Metadata, tally *Tally) error

	// OnFinish is always called at the end of a run. runErr is the error
	// that stopped the run, if any.
	OnFinish(ctx context.Context, runErr error) error
}

// NopObserver is an Observer that does nothing. It can be embedded by
// observers that only need some of the notifications.
type NopObserver[P any] struct{}

// OnStart implements [Observer.OnStart].
func (NopObserver[P]) OnStart(context.Context) error { return nil }

// BeforeEntries implements [Observer.BeforeEntries].
func (NopObserver[P]) BeforeEntries(context.Context, *metadata.Metadata) error { return nil }

// OnEntry implements [Observer.OnEntry].
func (NopObserver[P]) OnEntry(context.Context, P, *metadata.Metadata, *Tally) error { return nil }

// AfterEntries implements [Observer.AfterEntries].
func (NopObserver[P]) AfterEntries(context.Context, *metadata.Metadata, *Tally) error { return nil }

// OnFinish implements [Observer.OnFinish].
func (NopObserver[P]) OnFinish(context.Context, error) error { return nil }
