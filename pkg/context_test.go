package trigger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportLatchConcurrent(t *testing.T) {
	logger := &recordLogger{}
	var latch reportLatch
	var wg sync.WaitGroup
	reported := make(chan bool, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ev := NewEventContext(uint64(id), 0, logger)
			reported <- latch.report(ev, "key", errors.New("boom"))
		}(i)
	}
	wg.Wait()
	close(reported)

	first := 0
	for r := range reported {
		if r {
			first++
		}
	}
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, logger.errorCount())

	assert.True(t, latch.report(nil, "other", errors.New("boom")))
}

func TestNilEventContext(t *testing.T) {
	var ev *EventContext
	assert.Equal(t, uint64(0), ev.eventID())
	assert.Equal(t, 0, ev.verbosity())
	assert.IsType(t, NopLogger{}, ev.logger())

	ev = NewEventContext(3, 1, nil)
	assert.IsType(t, NopLogger{}, ev.logger())
}
