package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// StateWriter is the interface for recording match states.
// Different implementations handle different output formats (text, JSON).
type StateWriter interface {
	// WriteState writes a single state to the output.
	WriteState(state *State) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes states as board diagrams.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteState writes the move played, the board and the score line.
func (tw *TextWriter) WriteState(state *State) error {
	if state.LastMove != "" {
		if _, err := fmt.Fprintf(tw.w, "%d. %s\n", len(state.History), state.LastMove); err != nil {
			return err
		}
	}
	writeRows(tw.w, state.Board)
	_, err := fmt.Fprintf(tw.w, "Current Score -> White: %d | Black: %d\n", state.WhiteScore, state.BlackScore)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// Record holds every state of a match for array output.
type Record struct {
	States []*State `json:"states"`
}

// JSONWriter writes states in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*State
	single bool // If true, write each state immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches states and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*State, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state
// immediately, one JSON document per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteState buffers a state for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteState(state *State) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(state)
	}

	// Buffer for batch output
	jw.states = append(jw.states, state)
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&Record{States: jw.states})

	// Clear buffer after writing
	jw.states = jw.states[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
