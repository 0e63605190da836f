package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// elapsedAfter is how long a search runs before the spinner starts
// appending the elapsed time. Exact minimization is exponential, so runs
// past this threshold deserve a clock.
const elapsedAfter = 3 * time.Second

// Spinner is a stderr progress indicator for solver runs. The status line
// can be swapped mid-run, which the minimize command uses to surface the
// incumbent crossing count, and long runs grow an elapsed-time suffix.
type Spinner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	start   time.Time

	mu      sync.Mutex
	message string
	width   int // widest line rendered so far, for clearing
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that will stop when the context is
// cancelled, so an interrupted search leaves a clean line behind.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		start:   time.Now(),
		message: message,
		width:   len(message),
	}
}

// UpdateMessage swaps the status line shown on the next frame.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	if len(message) > s.width {
		s.width = len(message)
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				line := s.message
				if elapsed := time.Since(s.start); elapsed >= elapsedAfter {
					line = fmt.Sprintf("%s [%ds]", line, int(elapsed.Seconds()))
				}
				if len(line) > s.width {
					s.width = len(line)
				}
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.width+4))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
