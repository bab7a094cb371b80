package build

import (
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned by Panel.Trigger while a build is still running.
var ErrBusy = errors.New("build already running")

// Display is the front-end a Panel writes to. Implementations are called
// from the panel's drain goroutine and must hand the call over to their own
// UI thread if they have one.
type Display interface {
	Clear()
	AppendLine(line string)
	SetBuildEnabled(enabled bool)
}

// Panel drives one build trigger: idle, then running with the trigger
// disabled, then idle again once the tool's output is fully delivered.
type Panel struct {
	launcher *Launcher
	display  Display
	sem      *semaphore.Weighted

	mu      sync.Mutex
	running bool
	idle    chan struct{}
	last    *Result
}

// NewPanel creates an idle panel.
func NewPanel(l *Launcher, d Display) *Panel {
	idle := make(chan struct{})
	close(idle)
	return &Panel{
		launcher: l,
		display:  d,
		sem:      semaphore.NewWeighted(1),
		idle:     idle,
	}
}

// Trigger starts a build for req. It returns ErrBusy, and starts nothing,
// if the previous build has not finished.
func (p *Panel) Trigger(req BuildRequest) error {
	if !p.sem.TryAcquire(1) {
		return ErrBusy
	}

	p.mu.Lock()
	p.running = true
	idle := make(chan struct{})
	p.idle = idle
	p.mu.Unlock()

	p.display.SetBuildEnabled(false)
	p.display.Clear()

	run := p.launcher.Start(req)
	go p.drain(run, idle)
	return nil
}

func (p *Panel) drain(run *Run, idle chan struct{}) {
	for line := range run.Lines() {
		p.display.AppendLine(line)
	}
	res := run.Wait()

	p.mu.Lock()
	p.last = res
	p.running = false
	p.mu.Unlock()

	// Release before re-enabling: a trigger sent as soon as the display
	// shows the button again must be accepted.
	p.sem.Release(1)
	p.display.SetBuildEnabled(true)
	close(idle)
}

// Running reports whether a build is in flight.
func (p *Panel) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Wait blocks until the current build, if any, has finished and returns
// the most recent result. It returns nil if nothing was ever triggered.
func (p *Panel) Wait() *Result {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	<-idle

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
