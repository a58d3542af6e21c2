package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	trigger "github.com/next-exp/l1trigger_go/pkg"
)

type Emulator struct {
	Builder       *trigger.JetBuilder
	Menu          *trigger.Menu
	JetCollection string
	Verbosity     int
	Logger        trigger.Logger
}

func (e *Emulator) worker(id int, jobs <-chan *trigger.EventInput, results chan<- trigger.EventType, wg *sync.WaitGroup) {
	defer wg.Done()
	for input := range jobs {
		results <- e.processEvent(id, input)
	}
}

// processEvent never lets a panic escape the worker: the event is returned
// flagged as failed instead.
func (e *Emulator) processEvent(id int, input *trigger.EventInput) (event trigger.EventType) {
	defer func() {
		if r := recover(); r != nil {
			errMessage := fmt.Errorf("worker %d recovered from panic on event %d: %v", id, input.EventID, r)
			e.Logger.Error(errMessage.Error())
			event = trigger.EventType{RunNumber: input.RunNumber, EventID: input.EventID, Error: true}
		}
	}()

	if e.Verbosity > 1 {
		message := fmt.Sprintf("Worker %d processing event %d", id, input.EventID)
		e.Logger.Info(message, "workers")
	}
	ev := trigger.NewEventContext(input.EventID, e.Verbosity, e.Logger)
	return trigger.ProcessEvent(ev, input, e.Builder, e.Menu, e.JetCollection)
}

func sendEventsToWorkers(fileReader *FileReader, jobs chan<- *trigger.EventInput, logger trigger.Logger) {
	defer close(jobs)
	for {
		event, err := fileReader.getNextEvent()
		if err != nil {
			if err != io.EOF {
				message := fmt.Errorf("error reading event: %w", err)
				logger.Error(message.Error())
			}
			return
		}
		jobs <- event
	}
}

// Run processes every event of the reader with numWorkers goroutines and
// hands the results to sink in completion order.
func (e *Emulator) Run(fileReader *FileReader, numWorkers int, sink func(trigger.EventType)) {
	jobs := make(chan *trigger.EventInput, numWorkers)
	results := make(chan trigger.EventType, numWorkers)

	var wg sync.WaitGroup
	for id := 0; id < numWorkers; id++ {
		wg.Add(1)
		go e.worker(id, jobs, results, &wg)
	}
	go sendEventsToWorkers(fileReader, jobs, e.Logger)
	go func() {
		wg.Wait()
		close(results)
	}()

	for event := range results {
		sink(event)
	}
}

func processWorkerResults(config trigger.Configuration, writer *trigger.Writer, logger trigger.Logger) (func(trigger.EventType), func() int) {
	evtsProcessed := 0
	var totalTime time.Duration
	sink := func(event trigger.EventType) {
		evtsProcessed++
		recordEvent(event)
		if event.Error && config.Discard {
			message := fmt.Sprintf("discarding event %d", event.EventID)
			logger.Error(message)
			return
		}
		if writer == nil || !config.WriteData {
			return
		}
		start := time.Now()
		if err := writer.WriteEvent(&event); err != nil {
			logger.Error(err.Error())
		}
		totalTime += time.Since(start)
	}
	done := func() int {
		if config.Verbosity > 0 {
			message := fmt.Sprintf("Total time writing: %d ms", totalTime.Milliseconds())
			logger.Info(message, "workers")
		}
		return evtsProcessed
	}
	return sink, done
}
