package trigger

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

type EventDataHDF5 struct {
	EvtNumber int64 `hdf5:"evt_number"`
	NJets     int32 `hdf5:"n_jets"`
	Error     int8  `hdf5:"error"`
}

type RunInfoHDF5 struct {
	RunNumber int32         `hdf5:"run_number"`
	RunID     [UUIDLEN]byte `hdf5:"run_id"`
}

type DecisionHDF5 struct {
	EvtNumber int64        `hdf5:"evt_number"`
	Algorithm [STRLEN]byte `hdf5:"algorithm"`
	Bits      int32        `hdf5:"bits"`
	NBits     int32        `hdf5:"n_bits"`
}

type CompositeHDF5 struct {
	EvtNumber int64        `hdf5:"evt_number"`
	Algorithm [STRLEN]byte `hdf5:"algorithm"`
	Bit       int32        `hdf5:"bit"`
	Et1       int32        `hdf5:"et1"`
	Eta1      int32        `hdf5:"eta1"`
	Phi1      int32        `hdf5:"phi1"`
	Et2       int32        `hdf5:"et2"`
	Eta2      int32        `hdf5:"eta2"`
	Phi2      int32        `hdf5:"phi2"`
	DeltaEta  int32        `hdf5:"delta_eta"`
	DeltaPhi  int32        `hdf5:"delta_phi"`
	DeltaR2   uint32       `hdf5:"delta_r2"`
	MassSqr   float64      `hdf5:"mass_sqr"`
}

type JetHDF5 struct {
	EvtNumber int64  `hdf5:"evt_number"`
	Et        int32  `hdf5:"et"`
	Eta       int32  `hdf5:"eta"`
	Phi       int32  `hdf5:"phi"`
	Word      uint32 `hdf5:"word"`
	Saturated int8   `hdf5:"saturated"`
}

type MenuParamsHDF5 struct {
	Algorithm [STRLEN]byte `hdf5:"algorithm"`
	ParamStr  [STRLEN]byte `hdf5:"param"`
	Index     int32        `hdf5:"index"`
	Value     int32        `hdf5:"value"`
}

const (
	STRLEN  = 32
	UUIDLEN = 36
)

func convertToHdf5String(s string) [STRLEN]byte {
	var byteArray [STRLEN]byte
	copy(byteArray[:], s)
	return byteArray
}

func openFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

// table is an extensible one-dimensional compound dataset.
type table struct {
	dset *hdf5.Dataset
	rows uint
}

func createTable(group *hdf5.Group, name string, datatype interface{}, compressionLevel int) (*table, error) {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	file_space, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}
	defer file_space.Close()

	// create property list
	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}
	defer plist.Close()

	chunks := []uint{32768}
	if err := plist.SetChunk(chunks); err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}
	if err := plist.SetDeflate(compressionLevel); err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}

	// create the memory data type
	dtype, err := hdf5.NewDatatypeFromValue(datatype)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}

	dset, err := group.CreateDatasetWith(name, dtype, file_space, plist)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}
	return &table{dset: dset}, nil
}

func writeEntryToTable[T any](t *table, data T) error {
	array := []T{data}
	return writeArrayToTable(t, &array)
}

// writeArrayToTable appends data after the rows already written.
func writeArrayToTable[T any](t *table, data *[]T) error {
	length := uint(len(*data))
	if length == 0 {
		return nil
	}
	dims := []uint{length}
	dataspace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("error creating dataspace: %w", err)
	}
	defer dataspace.Close()

	// extend
	newsize := []uint{t.rows + length}
	if err := t.dset.Resize(newsize); err != nil {
		return fmt.Errorf("error resizing table: %w", err)
	}
	filespace := t.dset.Space()
	defer filespace.Close()

	start := []uint{t.rows}
	count := []uint{length}
	if err := filespace.SelectHyperslab(start, nil, count, nil); err != nil {
		return fmt.Errorf("error selecting hyperslab: %w", err)
	}

	if err := t.dset.WriteSubset(data, dataspace, filespace); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}
	t.rows += length
	return nil
}

func (t *table) Close() error {
	if t == nil {
		return nil
	}
	return t.dset.Close()
}
