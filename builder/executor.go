package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/masm-tools/masmtool/util"
)

// ExecutionID identifies one started build process.
type ExecutionID uint64

// SpawnFailedCode is reported when the process could not be started at all.
const SpawnFailedCode = -1

// Dispatcher delivers process completion events to whoever is waiting on the
// matching execution. A listener receives at most one exit code and is
// removed when it does.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[ExecutionID]chan int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: map[ExecutionID]chan int{}}
}

// Expect registers a listener for id. It must be called before the process
// for id is started.
func (d *Dispatcher) Expect(id ExecutionID) <-chan int {
	ch := make(chan int, 1)
	d.mu.Lock()
	d.listeners[id] = ch
	d.mu.Unlock()
	return ch
}

// Complete reports the exit code of id. It returns false when nobody was
// listening, e.g. for a second completion of the same execution.
func (d *Dispatcher) Complete(id ExecutionID, exitCode int) bool {
	d.mu.Lock()
	ch, ok := d.listeners[id]
	delete(d.listeners, id)
	d.mu.Unlock()
	if !ok {
		return false
	}
	ch <- exitCode
	return true
}

// Pending is the number of registered listeners that have not completed yet.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Execution is the handle of a started build.
type Execution struct {
	ID   ExecutionID
	done <-chan int
	once sync.Once
	code int
}

// Wait blocks until the process has ended and returns its exit code. There is
// no timeout. It may be called more than once.
func (x *Execution) Wait() int {
	x.once.Do(func() {
		x.code = <-x.done
	})
	return x.code
}

// Executor starts build scripts or plans as child processes. Concurrent
// builds are allowed; nothing here serialises them.
type Executor struct {
	Stdout     io.Writer
	Stderr     io.Writer
	dispatcher *Dispatcher
	lastID     uint64
}

func NewExecutor(stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{Stdout: stdout, Stderr: stderr, dispatcher: NewDispatcher()}
}

func (e *Executor) next() (ExecutionID, <-chan int) {
	id := ExecutionID(atomic.AddUint64(&e.lastID, 1))
	return id, e.dispatcher.Expect(id)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return SpawnFailedCode
}

// StartScript runs the script through its interpreter.
func (e *Executor) StartScript(s *Script) *Execution {
	id, done := e.next()
	cmd := s.command()
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		util.Warn("could not start build script %s: %v", s.Path, err)
		e.dispatcher.Complete(id, SpawnFailedCode)
		return &Execution{ID: id, done: done}
	}
	util.LogF("started build #%d (pid %d)", id, cmd.Process.Pid)

	go func() {
		code := exitCode(cmd.Wait())
		util.LogF("build #%d exited with code %d", id, code)
		e.dispatcher.Complete(id, code)
	}()
	return &Execution{ID: id, done: done}
}

// StartPlan runs every step of the plan directly, passing arguments to the
// tools without any shell in between. It stops at the first failing step.
func (e *Executor) StartPlan(p *Plan) *Execution {
	id, done := e.next()
	go func() {
		e.dispatcher.Complete(id, e.runPlan(p))
	}()
	return &Execution{ID: id, done: done}
}

func (e *Executor) runPlan(p *Plan) int {
	for _, s := range p.Steps {
		if s.Phase == PhaseLink {
			fmt.Fprintln(e.Stdout)
			fmt.Fprintln(e.Stdout, "Linking to output", p.Output)
		}
		cmd := exec.Command(s.Argv[0], s.Argv[1:]...)
		cmd.Dir = s.Dir
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
		code := exitCode(cmd.Run())
		if code == 0 {
			continue
		}
		if code == SpawnFailedCode {
			// mirror cmd.exe's "not recognized" status
			code = 1
		}
		if s.Phase == PhaseLink {
			fmt.Fprintln(e.Stdout, linkerErrorMessage, code)
		} else {
			fmt.Fprintln(e.Stdout, assemblerErrorMessage, code)
		}
		return code
	}
	fmt.Fprintln(e.Stdout, successMessage)
	return 0
}
