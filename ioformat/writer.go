package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fabiolinhares/wavepicker/instance"
)

// WriteSolution writes the solution-file format of spec.md §6: a count
// line and one id per line for the order set, then the same shape for the
// aisle set. An infeasible Solution (both sets empty) is written as two
// zero-count sections, matching spec.md §7's "well-formed Solution with
// empty sets" rule — the writer never refuses to emit a file.
func WriteSolution(w io.Writer, sol instance.Solution) error {
	bw := bufio.NewWriter(w)

	if err := writeIDSection(bw, sol.OrderSet); err != nil {
		return err
	}
	if err := writeIDSection(bw, sol.AisleSet); err != nil {
		return err
	}
	return bw.Flush()
}

func writeIDSection(bw *bufio.Writer, ids []int) error {
	if _, err := fmt.Fprintln(bw, len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}
	return nil
}
