package build

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultBuffer is the number of lines a Run holds before the reader waits
// for the consumer.
const DefaultBuffer = 256

// Launcher runs the external build tool, one process per Start.
type Launcher struct {
	Env    []string // extra KEY=VALUE pairs appended to the inherited environment
	Dir    string   // working directory for the tool; empty inherits ours
	Buffer int      // line channel capacity; <= 0 uses DefaultBuffer
	Log    logrus.FieldLogger
}

// NewLauncher creates a Launcher logging to the standard logrus logger.
func NewLauncher() *Launcher {
	return &Launcher{
		Buffer: DefaultBuffer,
		Log:    logrus.StandardLogger(),
	}
}

// Run is a single in-flight invocation of the tool.
type Run struct {
	ID      string
	Request BuildRequest

	lines  chan string
	done   chan struct{}
	result *Result
}

// Lines delivers the tool's merged stdout/stderr one line at a time as it
// is produced, followed by exactly one status line (see ExitLine and
// ErrorLine). The channel is closed after the status line.
//
// The channel is bounded: a consumer that stops reading stalls the tool's
// output pipe, so callers must drain it.
func (r *Run) Lines() <-chan string {
	return r.lines
}

// Done is closed once the status line has been delivered.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run is finished and returns its result.
func (r *Run) Wait() *Result {
	<-r.done
	return r.result
}

// Start launches the tool for req on a new goroutine and returns at once.
// There is no cancellation: the process runs until it exits on its own or
// its output can no longer be read.
func (l *Launcher) Start(req BuildRequest) *Run {
	run := &Run{
		ID:      uuid.NewString(),
		Request: req,
		lines:   make(chan string, l.bufferSize()),
		done:    make(chan struct{}),
	}
	go l.run(run)
	return run
}

// Execute runs req to completion, writing every line (status line
// included) to w.
func (l *Launcher) Execute(req BuildRequest, w io.Writer) *Result {
	run := l.Start(req)
	for line := range run.Lines() {
		fmt.Fprintln(w, line)
	}
	return run.Wait()
}

func (l *Launcher) run(run *Run) {
	start := time.Now()
	log := l.logger().WithFields(logrus.Fields{
		"run":  run.ID,
		"tool": run.Request.ToolPath,
	})

	res := &Result{RunID: run.ID, ExitCode: -1}
	code, err := l.exec(run.Request, run.lines, log)
	res.Duration = time.Since(start)
	if err != nil {
		res.Status = StatusFailed
		res.Error = err
		log.WithError(err).Debug("build tool failed")
	} else {
		res.Status = StatusSuccess
		res.ExitCode = code
		log.WithFields(logrus.Fields{
			"exit_code": code,
			"duration":  res.Duration,
		}).Debug("build tool exited")
	}

	run.lines <- res.StatusLine()
	close(run.lines)
	run.result = res
	close(run.done)
}

// exec starts the tool with stdout and stderr sharing one pipe, forwards
// every line, and returns the exit code.
func (l *Launcher) exec(req BuildRequest, lines chan<- string, log logrus.FieldLogger) (int, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return -1, fmt.Errorf("creating output pipe: %w", err)
	}
	defer pr.Close()

	cmd := exec.Command(req.ToolPath, req.Args()...)
	cmd.Stdout = pw
	cmd.Stderr = pw
	cmd.Dir = l.Dir
	if len(l.Env) > 0 {
		cmd.Env = append(os.Environ(), l.Env...)
	}

	log.Debugf("exec: %s", req.CommandLine())

	err = cmd.Start()
	// The child holds its own copy of the write end; ours must go so the
	// reader sees EOF when the child exits.
	pw.Close()
	if err != nil {
		return -1, err
	}

	if err := forwardLines(pr, lines); err != nil {
		// Reap in the background; nobody is reading its output any more.
		go cmd.Wait() //nolint:errcheck
		return -1, fmt.Errorf("reading output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// forwardLines sends each newline-delimited line of r, without its line
// ending, until EOF. A final line with no trailing newline is still sent.
func forwardLines(r io.Reader, lines chan<- string) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines <- line
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (l *Launcher) bufferSize() int {
	if l.Buffer <= 0 {
		return DefaultBuffer
	}
	return l.Buffer
}

func (l *Launcher) logger() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}
