package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/ioformat"
)

func TestWriteSolution_Feasible(t *testing.T) {
	sol := instance.NewSolution([]int{2, 0}, []int{1}, 7)
	var buf strings.Builder
	require.NoError(t, ioformat.WriteSolution(&buf, sol))
	require.Equal(t, "2\n0\n2\n1\n1\n", buf.String())
}

func TestWriteSolution_Infeasible(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, ioformat.WriteSolution(&buf, instance.Infeasible()))
	require.Equal(t, "0\n0\n", buf.String())
}

func TestWriteSolution_RoundTripsThroughParseSections(t *testing.T) {
	sol := instance.NewSolution([]int{0, 1, 2}, []int{0, 3}, 42)
	var buf strings.Builder
	require.NoError(t, ioformat.WriteSolution(&buf, sol))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{"3", "0", "1", "2", "2", "0", "3"}, lines)
}
