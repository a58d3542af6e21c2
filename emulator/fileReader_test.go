package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	trigger "github.com/next-exp/l1trigger_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	infos  []string
	errors []string
}

func (l *recordLogger) Info(message string, module string) { l.infos = append(l.infos, message) }
func (l *recordLogger) Error(message string)               { l.errors = append(l.errors, message) }

func eventStream(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "{\"run_number\": 12, \"event_id\": %d}\n", 100+i)
	}
	return b.String()
}

func readAll(t *testing.T, reader *FileReader) []uint64 {
	t.Helper()
	ids := make([]uint64, 0)
	for {
		event, err := reader.getNextEvent()
		if err == io.EOF {
			return ids
		}
		require.NoError(t, err)
		ids = append(ids, event.EventID)
	}
}

func TestFileReaderSkipAndMax(t *testing.T) {
	filename := writeFile(t, "events.json", eventStream(6))
	tests := []struct {
		name string
		skip int
		max  int
		want []uint64
	}{
		{"everything", 0, 100, []uint64{100, 101, 102, 103, 104, 105}},
		{"skip", 4, 100, []uint64{104, 105}},
		{"max", 0, 2, []uint64{100, 101}},
		{"skip and max", 1, 3, []uint64{101, 102, 103}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := os.Open(filename)
			require.NoError(t, err)
			defer file.Close()

			config := trigger.Configuration{Skip: tt.skip, MaxEvents: tt.max, Verbosity: 1}
			reader := NewFileReader(file, config, &recordLogger{})
			assert.Equal(t, tt.want, readAll(t, reader))
		})
	}
}

func TestFileReaderMalformed(t *testing.T) {
	filename := writeFile(t, "events.json", eventStream(1)+"{\"event_id\": \"x\"}\n")
	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	reader := NewFileReader(file, trigger.Configuration{MaxEvents: 10}, &recordLogger{})
	_, err = reader.getNextEvent()
	require.NoError(t, err)
	_, err = reader.getNextEvent()
	assert.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestPeekRunNumber(t *testing.T) {
	filename := writeFile(t, "events.json", eventStream(3))
	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	run, err := peekRunNumber(file)
	require.NoError(t, err)
	assert.Equal(t, 12, run)

	reader := NewFileReader(file, trigger.Configuration{MaxEvents: 10}, &recordLogger{})
	assert.Len(t, readAll(t, reader), 3)
}
