// Package logging configures debug logging for the TUI. Writing to
// stdout or stderr would corrupt the rendered frame, so logs either go
// to a file or are discarded entirely.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging. With an empty filename logging is disabled
// (except fatals/panics). With a filename, both stdlib and Bubble Tea
// logs are appended to that file. The returned cleanup closes the log
// files.
func Setup(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		tf.Close()
		f.Close()
	}, nil
}
