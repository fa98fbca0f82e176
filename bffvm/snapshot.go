package bffvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var ErrBadSnapshot = errors.New("bad snapshot")

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("bffvm: cbor enc mode: %w", err))
	}
	cborEncMode = em
}

func (v *VM) Snapshot(w io.Writer) error {
	if err := cborEncMode.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	var vm VM
	if err := cbor.NewDecoder(r).Decode(&vm); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if err := vm.validate(); err != nil {
		return err
	}
	if vm.Tape == nil {
		vm.Tape = []byte{}
	}
	*v = vm
	return nil
}

func (v *VM) validate() error {
	n := len(v.Tape)
	if v.PC < 0 || v.PC > n {
		return fmt.Errorf("%w: pc %d outside tape of %d cells", ErrBadSnapshot, v.PC, n)
	}
	for _, head := range []int{v.Head0, v.Head1} {
		if head < 0 || (n > 0 && head >= n) || (n == 0 && head != 0) {
			return fmt.Errorf("%w: head %d outside tape of %d cells", ErrBadSnapshot, head, n)
		}
	}
	if v.Steps < 0 {
		return fmt.Errorf("%w: negative step count %d", ErrBadSnapshot, v.Steps)
	}
	return nil
}
