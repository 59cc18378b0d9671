// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package journal implements the messaging collaborator of the material routines.
// A warning always returns false and a notification always returns true, so that
// routines may write `return o.Jnl.Warning(...)` to report a numerical failure.
package journal

import (
	"fmt"
	goio "io"
	"log/slog"
	"os"
	"sync"

	"github.com/cpmech/gosl/io"
)

// Journal receives warnings and notifications
type Journal interface {
	Warning(msg string, args ...interface{}) bool      // Warning logs a message and returns false
	Notification(msg string, args ...interface{}) bool // Notification logs a message and returns true
}

// Default returns the journal used when none is given
func Default() Journal { return Silent{} }

// Or returns jnl or the default journal if jnl is nil
func Or(jnl Journal) Journal {
	if jnl == nil {
		return Default()
	}
	return jnl
}

// Silent discards all messages /////////////////////////////////////////////////////////////////////

// Silent discards messages
type Silent struct{}

// Warning returns false
func (Silent) Warning(msg string, args ...interface{}) bool { return false }

// Notification returns true
func (Silent) Notification(msg string, args ...interface{}) bool { return true }

// Console prints with colours /////////////////////////////////////////////////////////////////////

// Console prints messages to the terminal if io.Verbose is on
type Console struct {
	Prefix string // e.g. "mw: "
}

// Warning prints a yellow message
func (o Console) Warning(msg string, args ...interface{}) bool {
	io.Pfyel(o.Prefix+msg+"\n", args...)
	return false
}

// Notification prints a green message
func (o Console) Notification(msg string, args ...interface{}) bool {
	io.Pfgreen(o.Prefix+msg+"\n", args...)
	return true
}

// Slog forwards to log/slog ///////////////////////////////////////////////////////////////////////

// Slog forwards messages to a structured logger
type Slog struct {
	L *slog.Logger
}

// NewSlog returns a text-handler journal writing to w; w == nil means stderr
func NewSlog(w goio.Writer, level slog.Level, component string) *Slog {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	if component != "" {
		l = l.With("component", component)
	}
	return &Slog{L: l}
}

// Warning logs at warn level
func (o *Slog) Warning(msg string, args ...interface{}) bool {
	o.L.Warn(fmt.Sprintf(msg, args...))
	return false
}

// Notification logs at info level
func (o *Slog) Notification(msg string, args ...interface{}) bool {
	o.L.Info(fmt.Sprintf(msg, args...))
	return true
}

// Counting ////////////////////////////////////////////////////////////////////////////////////////

// Counting counts messages and forwards them to Next (if not nil)
type Counting struct {
	Next          Journal
	mu            sync.Mutex
	Warnings      int
	Notifications int
	Last          string
}

// Warning counts and forwards a warning
func (o *Counting) Warning(msg string, args ...interface{}) bool {
	o.mu.Lock()
	o.Warnings++
	o.Last = fmt.Sprintf(msg, args...)
	o.mu.Unlock()
	if o.Next != nil {
		o.Next.Warning(msg, args...)
	}
	return false
}

// Notification counts and forwards a notification
func (o *Counting) Notification(msg string, args ...interface{}) bool {
	o.mu.Lock()
	o.Notifications++
	o.Last = fmt.Sprintf(msg, args...)
	o.mu.Unlock()
	if o.Next != nil {
		o.Next.Notification(msg, args...)
	}
	return true
}
