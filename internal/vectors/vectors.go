package vectors

import (
	"embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var vectorFS embed.FS

// Operations understood by the suites.
const (
	OpNew           = "new"
	OpCheckedAdd    = "checked_add"
	OpCheckedSub    = "checked_sub"
	OpCheckedMul    = "checked_mul"
	OpCheckedDiv    = "checked_div"
	OpSaturatingAdd = "saturating_add"
	OpSaturatingSub = "saturating_sub"
	OpSaturatingMul = "saturating_mul"
)

// Pair is a raw [seconds, nanoseconds] pair. It is not necessarily
// normalized.
type Pair struct {
	Seconds     int64
	Nanoseconds int32
}

// Named pairs usable in place of a literal.
var named = map[string]Pair{
	"zero": {0, 0},
	"min":  {math.MinInt64, -999_999_999},
	"max":  {math.MaxInt64, 999_999_999},
}

// UnmarshalYAML accepts a two-element sequence or one of the named pairs.
func (p *Pair) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		np, ok := named[value.Value]
		if !ok {
			return fmt.Errorf("line %d: unknown pair name %q", value.Line, value.Value)
		}
		*p = np
		return nil
	}

	var raw []int64
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("line %d: pair needs 2 elements, got %d", value.Line, len(raw))
	}
	if raw[1] < math.MinInt32 || raw[1] > math.MaxInt32 {
		return fmt.Errorf("line %d: nanoseconds %d exceeds int32", value.Line, raw[1])
	}
	*p = Pair{Seconds: raw[0], Nanoseconds: int32(raw[1])}
	return nil
}

// Case is a single vector.
type Case struct {
	Name   string `yaml:"name"`
	Op     string `yaml:"op"`
	A      Pair   `yaml:"a"`
	B      Pair   `yaml:"b"`
	Scalar int32  `yaml:"scalar"`
	Want   Pair   `yaml:"want"`
	Fails  bool   `yaml:"fails"`
}

// Suite is a named collection of vectors.
type Suite struct {
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Suite)
)

// Load loads a suite by name (e.g. "checked").
func Load(name string) (*Suite, error) {
	cacheMu.RLock()
	if s, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return s, nil
	}
	cacheMu.RUnlock()

	data, err := vectorFS.ReadFile("testdata/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("vector suite %q not found: %w", name, err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite %q: %w", name, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("suite %q: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = &s
	cacheMu.Unlock()

	return &s, nil
}

// Available returns the names of all embedded suites.
func Available() ([]string, error) {
	entries, err := vectorFS.ReadDir("testdata")
	if err != nil {
		return nil, fmt.Errorf("reading testdata directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads every embedded suite, keyed by name.
func LoadAll() (map[string]*Suite, error) {
	names, err := Available()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Suite, len(names))
	for _, name := range names {
		s, err := Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

func (s *Suite) validate() error {
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d has no name", i)
		}
		switch c.Op {
		case OpNew, OpCheckedAdd, OpCheckedSub, OpCheckedMul, OpCheckedDiv,
			OpSaturatingAdd, OpSaturatingSub, OpSaturatingMul:
		default:
			return fmt.Errorf("case %q: unknown op %q", c.Name, c.Op)
		}
		if c.Fails && strings.HasPrefix(c.Op, "saturating_") {
			return fmt.Errorf("case %q: saturating ops cannot fail", c.Name)
		}
	}
	return nil
}
