package sessions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/logs"
)

var (
	ErrLocked = errors.New("session locked")
	ErrExists = errors.New("session exists")
)

// Session is a VM persisted in a file, so a long run can be stepped across processes.
type Session struct {
	Path   string
	Logger logs.Logger
}

func (s *Session) Create(tape []byte, limit int) error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := os.Stat(s.Path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, s.Path)
	} else if !os.IsNotExist(err) {
		return err
	}
	vm := bffvm.NewVM(tape, limit)
	if err := s.save(vm); err != nil {
		return err
	}
	s.Logger.Info("session created", "path", s.Path, "cells", len(tape), "limit", limit)
	return nil
}

func (s *Session) Load() (*bffvm.VM, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	vm := new(bffvm.VM)
	if err := vm.Restore(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return vm, nil
}

// Step executes up to n instructions and saves the result. n <= 0 runs until the VM halts.
func (s *Session) Step(ctx context.Context, n int) (bffvm.Halt, error) {
	unlock, err := s.lock()
	if err != nil {
		return bffvm.Running, err
	}
	defer unlock()

	vm, err := s.Load()
	if err != nil {
		return bffvm.Running, err
	}

	before := vm.Steps
	if n <= 0 {
		vm.Run()
	} else {
		for i := 0; i < n && vm.Step(); i++ {
		}
	}
	halt := vm.Halt()

	if err := s.save(vm); err != nil {
		return halt, err
	}
	s.Logger.DebugContext(ctx, "session stepped",
		"path", s.Path,
		"steps", vm.Steps-before,
		"total", vm.Steps,
		"pc", vm.PC,
		"halt", halt.String(),
	)
	return halt, nil
}

// Run steps the session in chunks until it halts or ctx is done.
func (s *Session) Run(ctx context.Context, chunk int) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		halt, err := s.Step(ctx, chunk)
		if err != nil {
			s.Logger.ErrorContext(ctx, "session step failed", "path", s.Path, "error", err)
			return err
		}
		if halt != bffvm.Running {
			s.Logger.InfoContext(ctx, "session halted", "path", s.Path, "halt", halt.String())
			return nil
		}
	}
}

func (s *Session) lock() (unlock func(), err error) {
	lockFile := s.Path + ".lock"
	f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, lockFile)
		}
		return nil, err
	}
	f.Close()
	return func() {
		os.Remove(lockFile)
	}, nil
}

func (s *Session) save(vm *bffvm.VM) error {
	buf := new(bytes.Buffer)
	if err := vm.Snapshot(buf); err != nil {
		return err
	}
	// atomic write
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
