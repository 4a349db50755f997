// Package sink assembles content parts into a single output of one
// media type.
package sink

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/convert"
	"github.com/gaurav-prasanna/partstream/core/part"
)

// Sink converts parts to a fixed media type and concatenates them.
type Sink struct {
	outputType core.MediaType
	registry   *convert.Registry
}

// Option configures a Sink.
type Option func(*Sink)

// WithRegistry makes the sink convert against reg instead of
// convert.Default().
func WithRegistry(reg *convert.Registry) Option {
	return func(s *Sink) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New creates a Sink producing output of type t.
func New(t core.MediaType, opts ...Option) *Sink {
	s := &Sink{outputType: t}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = convert.Default()
	}
	return s
}

// Type returns the output media type.
func (s *Sink) Type() core.MediaType {
	return s.outputType
}

// Output converts every argument to the sink's media type and returns
// their contents joined in argument order, with no separator.
//
// Arguments go through part.From: raw values become text/plain parts and
// nils are skipped. If any conversion fails the error is returned and no
// output is produced.
func (s *Sink) Output(parts ...any) (string, error) {
	var b strings.Builder
	for i, v := range parts {
		p := part.From(v)
		if p == nil {
			continue
		}
		if err := s.write(&b, i, p); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// OutputParts is Output for a slice of parts.
func (s *Sink) OutputParts(parts []*part.Part) (string, error) {
	var b strings.Builder
	for i, p := range parts {
		if p == nil {
			continue
		}
		if err := s.write(&b, i, p); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (s *Sink) write(b *strings.Builder, i int, p *part.Part) error {
	converted, err := p.Convert(s.registry, s.outputType)
	if err != nil {
		return fmt.Errorf("part %d: %w", i, err)
	}
	b.WriteString(converted.Content)
	return nil
}
