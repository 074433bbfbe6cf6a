package console

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner shows activity on stderr while a batch runs. It does nothing when
// stderr is not a terminal, so piped output stays clean.
type Spinner struct {
	spinner *spinner.Spinner
	enabled bool
}

func NewSpinner(message string) *Spinner {
	s := &Spinner{enabled: isatty.IsTerminal(os.Stderr.Fd())}
	if s.enabled {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.spinner.Suffix = " " + message
		_ = s.spinner.Color("cyan")
	}
	return s
}

func (s *Spinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

func (s *Spinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}

// UpdateMessage replaces the text after the spinner. Safe to call from
// several goroutines.
func (s *Spinner) UpdateMessage(message string) {
	if !s.enabled {
		return
	}
	s.spinner.Lock()
	s.spinner.Suffix = " " + message
	s.spinner.Unlock()
}

// Progress shows "done/total" followed by the item being worked on
func (s *Spinner) Progress(done, total int, item string) {
	s.UpdateMessage(fmt.Sprintf("[%d/%d] %s", done, total, item))
}

// IsEnabled reports whether the spinner renders anything
func (s *Spinner) IsEnabled() bool {
	return s.enabled
}
