package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fabiolinhares/wavepicker/instance"
)

// lineReader reads the whitespace-separated, line-significant format of
// spec.md §6 one record at a time, tracking a 1-based line number for
// error context (mirroring verificar_instancias.cpp's upfront checks).
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

// fields returns the next non-blank line split on whitespace, or an error
// if the file ends first.
func (lr *lineReader) fields() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", instance.ErrInvalidInstance, err)
	}
	return nil, fmt.Errorf("%w: %w at line %d: unexpected end of file", instance.ErrInvalidInstance, ErrTruncated, lr.line+1)
}

func (lr *lineReader) ints() ([]int, error) {
	fields, err := lr.fields()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w at line %d: %q is not an integer", instance.ErrInvalidInstance, ErrMalformedLine, lr.line, f)
		}
		out[i] = v
	}
	return out, nil
}

// demandLine reads one "k item_0 qty_0 ... item_{k-1} qty_{k-1}" record,
// shared by order lines and aisle lines (spec.md §6: "same shape as an
// order line").
func (lr *lineReader) demandLine() (map[int]int, error) {
	vals, err := lr.ints()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %w at line %d: missing item count", instance.ErrInvalidInstance, ErrMalformedLine, lr.line)
	}
	k := vals[0]
	if len(vals) != 1+2*k {
		return nil, fmt.Errorf("%w: %w at line %d: declares %d items but has %d value(s)", instance.ErrInvalidInstance, ErrMalformedLine, lr.line, k, len(vals)-1)
	}
	m := make(map[int]int, k)
	for j := 0; j < k; j++ {
		item, qty := vals[1+2*j], vals[2+2*j]
		m[item] = qty
	}
	return m, nil
}

// ParseInstance reads the instance-file format of spec.md §6: a header
// line "N_O N_I N_A", N_O order lines, N_A aisle lines, and a final
// "LB UB" line. All id and quantity validation is delegated to
// instance.NewWarehouse/NewBacklog so there is exactly one place that
// enforces those invariants (spec.md §9: own the validation once).
func ParseInstance(r io.Reader) (*instance.Warehouse, *instance.Backlog, error) {
	lr := newLineReader(r)

	header, err := lr.ints()
	if err != nil {
		return nil, nil, err
	}
	if len(header) != 3 {
		return nil, nil, fmt.Errorf("%w: %w at line %d: header must have exactly 3 integers (N_O N_I N_A)", instance.ErrInvalidInstance, ErrMalformedLine, lr.line)
	}
	numOrders, numItems, numAisles := header[0], header[1], header[2]

	demand := make([]map[int]int, numOrders)
	for o := 0; o < numOrders; o++ {
		m, err := lr.demandLine()
		if err != nil {
			return nil, nil, fmt.Errorf("order %d: %w", o, err)
		}
		demand[o] = m
	}

	stock := make([]map[int]int, numAisles)
	for a := 0; a < numAisles; a++ {
		m, err := lr.demandLine()
		if err != nil {
			return nil, nil, fmt.Errorf("aisle %d: %w", a, err)
		}
		stock[a] = m
	}

	bounds, err := lr.ints()
	if err != nil {
		return nil, nil, err
	}
	if len(bounds) != 2 {
		return nil, nil, fmt.Errorf("%w: %w at line %d: bounds line must have exactly 2 integers (LB UB)", instance.ErrInvalidInstance, ErrMalformedLine, lr.line)
	}

	wh, err := instance.NewWarehouse(numItems, numAisles, stock)
	if err != nil {
		return nil, nil, err
	}
	bl, err := instance.NewBacklog(numOrders, numItems, demand, instance.Wave{LB: bounds[0], UB: bounds[1]})
	if err != nil {
		return nil, nil, err
	}
	return wh, bl, nil
}
