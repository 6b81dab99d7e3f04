package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poolcheck/pool"
)

// Case is one item sequence.
type Case []pool.Item

// rawCode keeps a scalar and its position so that bad codes can be reported
// together after the whole document has been parsed.
type rawCode struct {
	value string
	line  int
}

func (c *rawCode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: code must be a number or a name: %w", n.Line, ErrMalformed)
	}
	c.value, c.line = n.Value, n.Line

	return nil
}

type rawItem struct {
	codes []rawCode
	line  int
}

func (it *rawItem) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: item must be a list of codes: %w", n.Line, ErrMalformed)
	}
	it.line = n.Line

	return n.Decode(&it.codes)
}

// Decode reads a corpus from r.
//
// The input is HuJSON: JSON plus // and /* */ comments and trailing commas.
// A document holding no value (empty, blank, or only comments) is an empty
// corpus. Codes are numbers 0..3 or names such as "AC".
//
// Structural problems stop decoding with ErrMalformed. Item problems (an
// empty item, an unknown code) are collected across the whole corpus and
// returned together as a *multierror.Error whose entries each wrap
// pool.ErrInvalidItem; in that case no cases are returned.
func Decode(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("corpus: read: %w", err)
	}

	std, err := standardize(data)
	if err != nil {
		return nil, err
	}

	var raw [][]rawItem
	dec := yaml.NewDecoder(bytes.NewReader(std))
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Case{}, nil
		}
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var merr *multierror.Error
	cases := make([]Case, len(raw))
	for ci, rc := range raw {
		cases[ci] = make(Case, 0, len(rc))
		for ii, ri := range rc {
			it, err := ri.item()
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("case %d item %d (line %d): %w", ci, ii, ri.line, err))
				continue
			}
			cases[ci] = append(cases[ci], it)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return cases, nil
}

func (it rawItem) item() (pool.Item, error) {
	codes := make([]pool.Code, 0, len(it.codes))
	for _, rc := range it.codes {
		c, err := pool.ParseCode(rc.value)
		if err != nil {
			return 0, err
		}
		codes = append(codes, c)
	}

	return pool.NewItem(codes...)
}

// Load decodes the corpus file at path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer f.Close()

	cases, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cases, nil
}

// standardize turns HuJSON into plain JSON. Comments and trailing commas
// become spaces, so line numbers reported later still match the input.
func standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err == nil {
		return std, nil
	}
	// hujson rejects a document without a value; with an explicit null
	// appended such a document parses.
	if _, nerr := hujson.Standardize(append(bytes.Clone(data), "\nnull"...)); nerr == nil {
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
}
