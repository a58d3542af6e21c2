package trigger

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTower is returned by a TowerEnergyGrid for ids it does not hold.
	ErrUnknownTower = errors.New("unknown tower")
	// ErrMalformedTower is returned for towers with invalid content.
	ErrMalformedTower = errors.New("malformed tower data")
)

// ErrConfiguration represents an invalid or inconsistent algorithm parameter.
type ErrConfiguration struct {
	Algorithm string
	Parameter string
	Reason    string
}

func (e *ErrConfiguration) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("algorithm %q: %s", e.Algorithm, e.Reason)
	}
	return fmt.Sprintf("algorithm %q parameter %q: %s", e.Algorithm, e.Parameter, e.Reason)
}

// ErrInputCount represents an algorithm receiving the wrong number of TOB lists.
type ErrInputCount struct {
	Algorithm string
	Want      int
	Got       int
}

func (e *ErrInputCount) Error() string {
	return fmt.Sprintf("algorithm %q expects %d input lists, got %d", e.Algorithm, e.Want, e.Got)
}

// ErrTowerLookup represents a failure reading one cell of a search window.
type ErrTowerLookup struct {
	Tower TowerID
	Err   error
}

func (e *ErrTowerLookup) Error() string {
	return fmt.Sprintf("error reading tower %v: %v", e.Tower, e.Err)
}

func (e *ErrTowerLookup) Unwrap() error {
	return e.Err
}

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error {
	return e.Err
}

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}
