// Package part implements typed content parts: a string together with the
// media type it is currently encoded in.
package part

import (
	"fmt"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/convert"
)

// Part is content tagged with its media type. Content is always valid for
// Type; conversion changes both together.
type Part struct {
	Type    core.MediaType
	Content string
}

// New creates a Part.
func New(t core.MediaType, content string) *Part {
	return &Part{Type: t, Content: content}
}

// From normalizes an arbitrary value into a Part.
//
//   - nil (including a nil *Part) yields nil;
//   - a *Part is returned as is, not copied;
//   - a Part value is returned as a pointer to a copy;
//   - anything else becomes a text/plain part holding fmt.Sprint(v).
func From(v any) *Part {
	switch x := v.(type) {
	case nil:
		return nil
	case *Part:
		return x
	case Part:
		return &x
	default:
		return New(core.TextPlain, fmt.Sprint(v))
	}
}

// String returns the part content.
func (p *Part) String() string {
	return p.Content
}

// Convert returns a new Part holding p's content converted to the given
// media type. The receiver is never modified.
//
// Converting to p.Type succeeds without consulting the registry. Otherwise
// the converter registered for exactly (p.Type, to) is applied; when there
// is none the error is a *core.ConversionNotFoundError. A nil reg means
// convert.Default().
func (p *Part) Convert(reg *convert.Registry, to core.MediaType) (*Part, error) {
	content, err := p.converted(reg, to)
	if err != nil {
		return nil, err
	}
	return New(to, content), nil
}

// ConvertInPlace converts p to the given media type, replacing its type
// and content together. On error p is left unchanged.
func (p *Part) ConvertInPlace(reg *convert.Registry, to core.MediaType) error {
	content, err := p.converted(reg, to)
	if err != nil {
		return err
	}
	*p = Part{Type: to, Content: content}
	return nil
}

func (p *Part) converted(reg *convert.Registry, to core.MediaType) (string, error) {
	if to == p.Type {
		return p.Content, nil
	}
	if reg == nil {
		reg = convert.Default()
	}

	fn, ok := reg.Lookup(p.Type, to)
	if !ok {
		return "", &core.ConversionNotFoundError{From: p.Type, To: to}
	}
	content, err := fn(p.Content)
	if err != nil {
		return "", fmt.Errorf("converting %s to %s: %w", p.Type, to, err)
	}
	return content, nil
}
