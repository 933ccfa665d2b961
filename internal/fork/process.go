// Package fork запускает собранный бинарник ftracker в отдельном процессе
// для проверок "чёрного ящика".
package fork

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"
)

type BackgroundProcess struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer

	waitPortInterval    time.Duration
	waitPortConnTimeout time.Duration
}

// NewBackgroundProcess returns new unstarted background process instance.
func NewBackgroundProcess(ctx context.Context, command string, opts ...ProcessOpt) *BackgroundProcess {
	p := &BackgroundProcess{
		cmd:                 exec.CommandContext(ctx, command),
		stdout:              new(buffer),
		stderr:              new(buffer),
		waitPortInterval:    100 * time.Millisecond,
		waitPortConnTimeout: 50 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	return p
}

// Start attempts to create OS process and start command execution.
func (p *BackgroundProcess) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the process exits on its own and returns its exit code.
// A non-zero exit code is not an error.
func (p *BackgroundProcess) Wait(ctx context.Context) (exitCode int, err error) {
	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		_ = p.cmd.Process.Kill()
		<-done
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return -1, err
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// WaitPort tries to perform network connection to given port.
func (p *BackgroundProcess) WaitPort(ctx context.Context, network, port string) error {
	ticker := time.NewTicker(p.waitPortInterval)
	defer ticker.Stop()

	port = strings.TrimLeft(port, ":")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			conn, _ := net.DialTimeout(network, "localhost:"+port, p.waitPortConnTimeout)
			if conn != nil {
				_ = conn.Close()
				return nil
			}
		}
	}
}

// Stdout returns everything the process has written to stdout so far.
func (p *BackgroundProcess) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *BackgroundProcess) Stderr() []byte {
	return p.stderr.Bytes()
}

// Stop attempts to send given signals to process one by one.
// After first successful signal attempt exit code of process will be returned
func (p *BackgroundProcess) Stop(signals ...os.Signal) (exitCode int, err error) {
	for _, sig := range signals {
		err = p.cmd.Process.Signal(sig)
		if err == nil {
			break
		}
	}

	if err != nil {
		return -1, fmt.Errorf("error sending signal to process: %w", err)
	}

	state, err := p.cmd.Process.Wait()
	if state == nil {
		return -1, err
	}
	return state.ExitCode(), err
}

// String returns a human-readable representation of process command.
func (p *BackgroundProcess) String() string {
	return p.cmd.String()
}
