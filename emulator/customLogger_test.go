package main

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{
		InfoLog:  slog.New(NewHandler(&buf, nil)),
		ErrorLog: slog.New(NewHandler(&buf, nil)).With("run", 7),
	}

	logger.Info("Reading event 3", "fileReader")
	logger.Error("discarding event 3")
	slog.New(NewHandler(&buf, nil)).Debug("hidden")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Regexp(t, regexp.MustCompile(`^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] \[fileReader\] Reading event 3$`), string(lines[0]))
	assert.Regexp(t, regexp.MustCompile(`\] \[ERROR\] \[7\] discarding event 3$`), string(lines[1]))
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).Debug("shown")
	assert.Contains(t, buf.String(), "[DEBUG] shown")
}
