// Package trace parses ASCII event traces written by a random-access network
// simulator into structured TX/RX records.
package trace

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Split reads raw trace text and returns one string per physical event, in
// input order. A line starting with 't' or 'r' begins a new event; any other
// line was wrapped by the trace writer and is concatenated onto the current
// event. The very first line always starts an event.
func Split(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var events []string
	var current strings.Builder
	started := false

	for scanner.Scan() {
		line := scanner.Text()
		if !started {
			current.WriteString(line)
			started = true
			continue
		}
		if len(line) > 0 && (line[0] == 't' || line[0] == 'r') {
			events = append(events, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if started {
		events = append(events, current.String())
	}
	return events, nil
}

// SplitFile loads a whole trace file into memory and splits it into events.
func SplitFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Split(f)
}
