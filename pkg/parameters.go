package trigger

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ParameterEntry is one row of the flat configuration table. Scalar
// parameters use index 0.
type ParameterEntry struct {
	Name  string `json:"name" db:"Name"`
	Index int    `json:"index" db:"Idx"`
	Value int    `json:"value" db:"Value"`
}

// Parameters is the key -> indexed value table of one algorithm instance.
type Parameters struct {
	values map[string]map[int]int
}

func NewParameters(entries ...ParameterEntry) *Parameters {
	p := &Parameters{values: make(map[string]map[int]int)}
	for _, e := range entries {
		p.Set(e.Name, e.Index, e.Value)
	}
	return p
}

func (p *Parameters) Set(name string, index int, value int) {
	if p.values[name] == nil {
		p.values[name] = make(map[int]int)
	}
	p.values[name][index] = value
}

func (p *Parameters) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

func (p *Parameters) Get(name string, index int) (int, bool) {
	v, ok := p.values[name][index]
	return v, ok
}

// Scalar returns the index 0 value of name, or def when it is not set.
func (p *Parameters) Scalar(name string, def int) int {
	if v, ok := p.Get(name, 0); ok {
		return v
	}
	return def
}

// Array returns indices 0..n-1 of name. Every index has to be present.
func (p *Parameters) Array(name string, n int) ([]int, error) {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, ok := p.Get(name, i)
		if !ok {
			return nil, fmt.Errorf("missing %s[%d]", name, i)
		}
		out[i] = v
	}
	return out, nil
}

// Entries returns the table sorted by name and index.
func (p *Parameters) Entries() []ParameterEntry {
	entries := make([]ParameterEntry, 0)
	for _, name := range slices.Sorted(maps.Keys(p.values)) {
		for _, i := range slices.Sorted(maps.Keys(p.values[name])) {
			entries = append(entries, ParameterEntry{Name: name, Index: i, Value: p.values[name][i]})
		}
	}
	return entries
}

func (p *Parameters) String() string {
	parts := make([]string, 0)
	for _, e := range p.Entries() {
		parts = append(parts, fmt.Sprintf("%s[%d]=%d", e.Name, e.Index, e.Value))
	}
	return strings.Join(parts, " ")
}
