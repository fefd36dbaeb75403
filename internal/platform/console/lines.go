// Package console is the line-oriented frontend: boards and messages are
// printed to a writer and coordinates are read one line at a time.
package console

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// Lines is a seabattle.LineSource fed by another goroutine. It lets a blocked
// ReadLine return as soon as ctx is done, which a plain io.Reader cannot.
type Lines struct {
	ch   chan string
	done chan struct{}
	once sync.Once
	err  error
}

// NewLines creates an open, empty Lines.
func NewLines() *Lines {
	return &Lines{
		ch:   make(chan string),
		done: make(chan struct{}),
	}
}

// Send hands line to the next ReadLine. It blocks until the line is taken,
// Lines is closed, or ctx is done.
func (l *Lines) Send(ctx context.Context, line string) error {
	select {
	case l.ch <- line:
		return nil
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CloseWithError ends the stream. Pending and later ReadLine calls return err,
// or io.EOF if err is nil. Only the first call has an effect.
func (l *Lines) CloseWithError(err error) {
	l.once.Do(func() {
		if err == nil {
			err = io.EOF
		}
		l.err = err
		close(l.done)
	})
}

// ReadLine implements seabattle.LineSource.
func (l *Lines) ReadLine(ctx context.Context) (string, error) {
	select {
	case line := <-l.ch:
		return line, nil
	case <-l.done:
		return "", l.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadLines starts a goroutine scanning r line by line into a new Lines. The
// stream is closed with the scanner's error, or io.EOF at the end of r.
func ReadLines(ctx context.Context, r io.Reader) *Lines {
	l := NewLines()
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if err := l.Send(ctx, scanner.Text()); err != nil {
				return
			}
		}
		l.CloseWithError(scanner.Err())
	}()
	return l
}
