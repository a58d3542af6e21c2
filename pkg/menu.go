package trigger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type AlgorithmConfig struct {
	Name       string           `json:"name"`
	Type       AlgorithmType    `json:"type"`
	Inputs     []string         `json:"inputs"`
	Parameters []ParameterEntry `json:"parameters"`
}

type MenuConfig struct {
	Algorithms []AlgorithmConfig `json:"algorithms"`
}

func LoadMenuFile(filename string) (MenuConfig, error) {
	var menu MenuConfig
	data, err := os.ReadFile(filename)
	if err != nil {
		return menu, &ErrOpenFile{Filename: filename, Err: err}
	}
	if err := json.Unmarshal(data, &menu); err != nil {
		return menu, fmt.Errorf("error parsing menu %q: %w", filename, err)
	}
	return menu, nil
}

// MenuAlgorithm binds a selector to the TOB collections it reads.
type MenuAlgorithm struct {
	Selector *Selector
	Inputs   []string
}

// Menu is the set of topological algorithms run on every event. It is
// immutable after BuildMenu.
type Menu struct {
	Algorithms []MenuAlgorithm
}

// BuildMenu instantiates every algorithm of the configuration. Input
// bindings are checked against the algorithm type here so that evaluation
// never sees a mismatch coming from the menu.
func BuildMenu(cfg MenuConfig) (*Menu, error) {
	menu := &Menu{}
	names := make(map[string]bool)
	for _, alg := range cfg.Algorithms {
		if names[alg.Name] {
			return nil, &ErrConfiguration{Algorithm: alg.Name, Reason: "duplicated algorithm name"}
		}
		names[alg.Name] = true

		selector, err := NewSelector(alg.Name, alg.Type, NewParameters(alg.Parameters...))
		if err != nil {
			return nil, err
		}
		if len(alg.Inputs) != selector.NumInputs() {
			return nil, &ErrInputCount{Algorithm: alg.Name, Want: selector.NumInputs(), Got: len(alg.Inputs)}
		}
		menu.Algorithms = append(menu.Algorithms, MenuAlgorithm{Selector: selector, Inputs: alg.Inputs})
	}
	return menu, nil
}

// NewDecisions allocates one output per algorithm, in menu order.
func (m *Menu) NewDecisions() []*Decision {
	decisions := make([]*Decision, len(m.Algorithms))
	for i, alg := range m.Algorithms {
		decisions[i] = alg.Selector.NewDecision()
	}
	return decisions
}

// Evaluate runs all algorithms of the menu on the event collections.
// Missing collections are treated as empty. out must come from
// NewDecisions.
func (m *Menu) Evaluate(ev *EventContext, collections map[string][]GenericTOB, out []*Decision) error {
	if len(out) != len(m.Algorithms) {
		return fmt.Errorf("menu has %d algorithms, got %d outputs", len(m.Algorithms), len(out))
	}
	var errs []error
	for i, alg := range m.Algorithms {
		inputs := make([][]GenericTOB, len(alg.Inputs))
		for j, name := range alg.Inputs {
			inputs[j] = collections[name]
		}
		if err := alg.Selector.Evaluate(ev, out[i], inputs...); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
