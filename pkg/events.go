package trigger

import (
	"fmt"
	"strings"
)

type TowerRecord struct {
	Module int `json:"module"`
	Eta    int `json:"eta"`
	Phi    int `json:"phi"`
	Energy int `json:"energy"`
}

type CandidateRecord struct {
	Module   int `json:"module"`
	FPGA     int `json:"fpga"`
	LocalEta int `json:"local_eta"`
	LocalPhi int `json:"local_phi"`
}

type TOBRecord struct {
	Kind      string `json:"kind"`
	Et        int    `json:"et"`
	Eta       int    `json:"eta"`
	Phi       int    `json:"phi"`
	Saturated bool   `json:"saturated"`
}

// EventInput is one event as read from the input file.
type EventInput struct {
	RunNumber   int                    `json:"run_number"`
	EventID     uint64                 `json:"event_id"`
	Towers      []TowerRecord          `json:"towers"`
	Candidates  []CandidateRecord      `json:"candidates"`
	Collections map[string][]TOBRecord `json:"collections"`
}

type EventType struct {
	RunNumber int
	EventID   uint64
	Jets      []GenericTOB
	Decisions []*Decision
	Error     bool
}

func ParseTOBKind(kind string) (TOBKind, error) {
	switch strings.ToLower(kind) {
	case "jet", "":
		return JetKind, nil
	case "em":
		return EMKind, nil
	case "tau":
		return TauKind, nil
	case "muon":
		return MuonKind, nil
	}
	return 0, fmt.Errorf("unknown TOB kind %q", kind)
}

// TOBCollections converts the input TOB records into ordered TOB lists.
func (in *EventInput) TOBCollections() (map[string][]GenericTOB, error) {
	collections := make(map[string][]GenericTOB, len(in.Collections))
	for name, records := range in.Collections {
		list := make([]GenericTOB, 0, len(records))
		for _, r := range records {
			kind, err := ParseTOBKind(r.Kind)
			if err != nil {
				return nil, fmt.Errorf("collection %s: %w", name, err)
			}
			tob, err := NewTOB(kind, r.Et, r.Eta, r.Phi, r.Saturated)
			if err != nil {
				return nil, fmt.Errorf("collection %s: %w", name, err)
			}
			list = append(list, tob)
		}
		SortByEt(list)
		collections[name] = list
	}
	return collections, nil
}

func (in *EventInput) TowerGrid() TowerMap {
	towers := make([]Tower, len(in.Towers))
	for i, t := range in.Towers {
		towers[i] = Tower{ID: TowerID{Module: t.Module, Eta: t.Eta, Phi: t.Phi}, Energy: t.Energy}
	}
	return NewTowerMap(towers)
}

func (in *EventInput) Positions() []Position {
	positions := make([]Position, len(in.Candidates))
	for i, c := range in.Candidates {
		positions[i] = Position{Module: c.Module, FPGA: c.FPGA, LocalEta: c.LocalEta, LocalPhi: c.LocalPhi}
	}
	return positions
}

// ProcessEvent runs the jet builder over the candidate centres, publishes
// the jets as jetCollection and evaluates the menu. Malformed TOB records
// mark the event as failed; missing towers only lose their candidates.
func ProcessEvent(ev *EventContext, in *EventInput, builder *JetBuilder, menu *Menu, jetCollection string) EventType {
	event := EventType{RunNumber: in.RunNumber, EventID: in.EventID}

	collections, err := in.TOBCollections()
	if err != nil {
		ev.logger().Error(fmt.Sprintf("event %d: %v", in.EventID, err))
		event.Error = true
		return event
	}

	event.Jets = builder.BuildAll(ev, in.TowerGrid(), in.Positions())
	if jetCollection != "" {
		if _, ok := collections[jetCollection]; ok && ev.verbosity() > 0 {
			message := fmt.Sprintf("Event %d: collection %s replaced by built jets", in.EventID, jetCollection)
			ev.logger().Info(message, "events")
		}
		collections[jetCollection] = event.Jets
	}

	event.Decisions = menu.NewDecisions()
	if err := menu.Evaluate(ev, collections, event.Decisions); err != nil {
		ev.logger().Error(fmt.Sprintf("event %d: %v", in.EventID, err))
		event.Error = true
	}
	return event
}
