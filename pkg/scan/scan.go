// Package scan turns the text printed by `iw dev <iface> scan` and
// `iwlist <iface> scan` into Cell records.
//
// Parsing is pure: nothing here runs a command or keeps state between
// calls, so the functions are safe for concurrent use.
package scan

import (
	"errors"

	"github.com/sirupsen/logrus"
)

type options struct {
	skipMalformed bool
	log           logrus.FieldLogger
}

type Option func(*options)

// SkipMalformed makes ParseAll drop cells that fail to parse instead of
// returning the first failure.
func SkipMalformed() Option {
	return func(o *options) {
		o.skipMalformed = true
	}
}

// WithLogger reports skipped cells on l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// SkipMalformedIf is SkipMalformed when skip is true and a no-op otherwise.
func SkipMalformedIf(skip bool) Option {
	return func(o *options) {
		o.skipMalformed = o.skipMalformed || skip
	}
}

// ParseAll splits raw scan output and parses every cell in order. By
// default the first malformed cell aborts the whole parse with a
// *BlockError.
func ParseAll(raw string, opts ...Option) ([]Cell, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	blocks := Split(raw)
	cells := make([]Cell, 0, len(blocks))
	for i, block := range blocks {
		cell, err := ParseCell(block)
		if err != nil {
			var be *BlockError
			if errors.As(err, &be) {
				be.Index = i
			}
			if !o.skipMalformed {
				return nil, err
			}
			if o.log != nil {
				o.log.WithError(err).WithField("block", i).Warn("skipping malformed cell")
			}
			continue
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// Filter is ParseAll followed by keeping only the cells for which keep
// returns true.
func Filter(raw string, keep func(Cell) bool, opts ...Option) ([]Cell, error) {
	cells, err := ParseAll(raw, opts...)
	if err != nil {
		return nil, err
	}
	return Select(cells, keep), nil
}
