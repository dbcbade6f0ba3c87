package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aleister1102/gistwatch/internal/models"
)

// ConsoleSink writes the alert line to a writer, stdout by default.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink creates a ConsoleSink. A nil writer means os.Stdout.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Name() string { return ConsoleSinkName }

// Notify prints the alert text on a single line.
func (s *ConsoleSink) Notify(_ context.Context, alert models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.out, alert.Text)
	return err
}
