package trigger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/hdf5"
)

type Writer struct {
	File            *hdf5.File
	Filename        string
	RunID           uuid.UUID
	FirstEvt        bool
	WriteComposites bool
	RunGroup        *hdf5.Group
	JetsGroup       *hdf5.Group
	TopoGroup       *hdf5.Group
	EventTable      *table
	RunInfoTable    *table
	MenuParamsTable *table
	JetTable        *table
	DecisionTable   *table
	CompositeTable  *table
	EvtCounter      int
	menu            *Menu
}

// NewWriter creates the output file and its tables. The menu parameters are
// stored once, with the first event.
func NewWriter(filename string, menu *Menu, compressionLevel int, writeComposites bool) (*Writer, error) {
	writer := &Writer{
		Filename:        filename,
		RunID:           uuid.New(),
		WriteComposites: writeComposites,
		menu:            menu,
	}
	var err error
	if writer.File, err = openFile(filename); err != nil {
		return nil, err
	}

	groups := []struct {
		dst  **hdf5.Group
		name string
	}{
		{&writer.RunGroup, "Run"},
		{&writer.JetsGroup, "Jets"},
		{&writer.TopoGroup, "Topo"},
	}
	for _, g := range groups {
		if *g.dst, err = createGroup(writer.File, g.name); err != nil {
			writer.Close()
			return nil, err
		}
	}

	tables := []struct {
		dst      **table
		group    *hdf5.Group
		name     string
		datatype interface{}
	}{
		{&writer.EventTable, writer.RunGroup, "events", EventDataHDF5{}},
		{&writer.RunInfoTable, writer.RunGroup, "runInfo", RunInfoHDF5{}},
		{&writer.JetTable, writer.JetsGroup, "jets", JetHDF5{}},
		{&writer.MenuParamsTable, writer.TopoGroup, "configuration", MenuParamsHDF5{}},
		{&writer.DecisionTable, writer.TopoGroup, "decisions", DecisionHDF5{}},
		{&writer.CompositeTable, writer.TopoGroup, "composites", CompositeHDF5{}},
	}
	for _, t := range tables {
		if *t.dst, err = createTable(t.group, t.name, t.datatype, compressionLevel); err != nil {
			writer.Close()
			return nil, err
		}
	}
	return writer, nil
}

func (w *Writer) WriteEvent(event *EventType) error {
	if !w.FirstEvt {
		var runID [UUIDLEN]byte
		copy(runID[:], w.RunID.String())
		if err := writeEntryToTable(w.RunInfoTable, RunInfoHDF5{RunNumber: int32(event.RunNumber), RunID: runID}); err != nil {
			return fmt.Errorf("error writing run info: %w", err)
		}
		if err := w.writeMenuConfiguration(); err != nil {
			return err
		}
		w.FirstEvt = true
	}

	evtError := int8(0)
	if event.Error {
		evtError = 1
	}
	err := writeEntryToTable(w.EventTable, EventDataHDF5{
		EvtNumber: int64(event.EventID),
		NJets:     int32(len(event.Jets)),
		Error:     evtError,
	})
	if err != nil {
		return fmt.Errorf("error writing event %d: %w", event.EventID, err)
	}

	jets := make([]JetHDF5, 0, len(event.Jets))
	for _, tob := range event.Jets {
		entry := JetHDF5{
			EvtNumber: int64(event.EventID),
			Et:        int32(tob.Et()),
			Eta:       int32(tob.Eta()),
			Phi:       int32(tob.Phi()),
		}
		if tob.IsSaturated() {
			entry.Saturated = 1
		}
		if jet, ok := tob.(*JetTOB); ok {
			entry.Word = jet.Word()
		}
		jets = append(jets, entry)
	}
	if err := writeArrayToTable(w.JetTable, &jets); err != nil {
		return fmt.Errorf("error writing jets of event %d: %w", event.EventID, err)
	}

	decisions := make([]DecisionHDF5, 0, len(event.Decisions))
	composites := make([]CompositeHDF5, 0)
	for _, d := range event.Decisions {
		algorithm := convertToHdf5String(d.Algorithm)
		decisions = append(decisions, DecisionHDF5{
			EvtNumber: int64(event.EventID),
			Algorithm: algorithm,
			Bits:      int32(d.Bits.Word()),
			NBits:     int32(d.Bits.Len()),
		})
		if !w.WriteComposites {
			continue
		}
		for bit, list := range d.Composites {
			for _, c := range list {
				composites = append(composites, CompositeHDF5{
					EvtNumber: int64(event.EventID),
					Algorithm: algorithm,
					Bit:       int32(bit),
					Et1:       int32(c.First.Et()),
					Eta1:      int32(c.First.Eta()),
					Phi1:      int32(c.First.Phi()),
					Et2:       int32(c.Second.Et()),
					Eta2:      int32(c.Second.Eta()),
					Phi2:      int32(c.Second.Phi()),
					DeltaEta:  int32(c.Kinematics.DeltaEta),
					DeltaPhi:  int32(c.Kinematics.DeltaPhi),
					DeltaR2:   c.Kinematics.DeltaR2,
					MassSqr:   c.Kinematics.MassSqr,
				})
			}
		}
	}
	if err := writeArrayToTable(w.DecisionTable, &decisions); err != nil {
		return fmt.Errorf("error writing decisions of event %d: %w", event.EventID, err)
	}
	if err := writeArrayToTable(w.CompositeTable, &composites); err != nil {
		return fmt.Errorf("error writing composites of event %d: %w", event.EventID, err)
	}

	w.EvtCounter++
	return nil
}

func (w *Writer) writeMenuConfiguration() error {
	if w.menu == nil {
		return nil
	}
	entries := make([]MenuParamsHDF5, 0)
	for _, alg := range w.menu.Algorithms {
		algorithm := convertToHdf5String(alg.Selector.Name)
		for _, p := range alg.Selector.Parameters().Entries() {
			entries = append(entries, MenuParamsHDF5{
				Algorithm: algorithm,
				ParamStr:  convertToHdf5String(p.Name),
				Index:     int32(p.Index),
				Value:     int32(p.Value),
			})
		}
	}
	if err := writeArrayToTable(w.MenuParamsTable, &entries); err != nil {
		return fmt.Errorf("error writing menu configuration: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	var errs []error

	tables := []struct {
		t    *table
		name string
	}{
		{w.EventTable, "event table"},
		{w.RunInfoTable, "run info table"},
		{w.JetTable, "jet table"},
		{w.MenuParamsTable, "menu parameters table"},
		{w.DecisionTable, "decision table"},
		{w.CompositeTable, "composite table"},
	}
	for _, t := range tables {
		if err := t.t.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s: %w", t.name, err))
		}
	}

	groups := []struct {
		g    *hdf5.Group
		name string
	}{
		{w.RunGroup, "run group"},
		{w.JetsGroup, "jets group"},
		{w.TopoGroup, "topo group"},
	}
	for _, g := range groups {
		if g.g == nil {
			continue
		}
		if err := g.g.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s: %w", g.name, err))
		}
	}

	if w.File != nil {
		if err := w.File.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
