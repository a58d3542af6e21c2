package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	trigger "github.com/next-exp/l1trigger_go/pkg"
)

// FileReader reads a stream of JSON encoded events, one object after the
// other, honouring the skip and max events settings.
type FileReader struct {
	File      *os.File
	EvtCount  int
	Skip      int
	MaxEvents int
	Verbosity int
	logger    trigger.Logger
	decoder   *json.Decoder
}

func NewFileReader(file *os.File, config trigger.Configuration, logger trigger.Logger) *FileReader {
	return &FileReader{
		File:      file,
		EvtCount:  -1,
		Skip:      config.Skip,
		MaxEvents: config.MaxEvents,
		Verbosity: config.Verbosity,
		logger:    logger,
		decoder:   json.NewDecoder(file),
	}
}

func (f *FileReader) getNextEvent() (*trigger.EventInput, error) {
	for {
		var event trigger.EventInput
		if err := f.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("error decoding event %d: %w", f.EvtCount+1, err)
		}
		f.EvtCount++
		if f.EvtCount >= f.MaxEvents+f.Skip {
			if f.Verbosity > 0 {
				f.logger.Info("Max events reached", "fileReader")
			}
			return nil, io.EOF
		}
		if f.EvtCount < f.Skip {
			if f.Verbosity > 0 {
				message := fmt.Sprintf("Skipping event %d with ID %d", f.EvtCount, event.EventID)
				f.logger.Info(message, "fileReader")
			}
			continue
		}
		if f.Verbosity > 0 {
			message := fmt.Sprintf("Reading event %d with ID %d", f.EvtCount, event.EventID)
			f.logger.Info(message, "fileReader")
		}
		return &event, nil
	}
}

// peekRunNumber returns the run number of the first event and rewinds the
// file. It is needed to select the menu before processing starts.
func peekRunNumber(file *os.File) (int, error) {
	var event struct {
		RunNumber int `json:"run_number"`
	}
	err := json.NewDecoder(file).Decode(&event)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("error reading first event: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return event.RunNumber, nil
}
