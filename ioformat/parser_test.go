package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/ioformat"
)

// scenarioA is spec.md §8 Scenario A: a trivial single-order instance.
const scenarioA = "1 2 1\n1 0 3 1 2\n1 0 3 1 2\n1 100\n"

func TestParseInstance_ScenarioA(t *testing.T) {
	require := require.New(t)
	wh, bl, err := ioformat.ParseInstance(strings.NewReader(scenarioA))
	require.NoError(err)
	require.Equal(2, wh.NumItems)
	require.Equal(1, wh.NumAisles)
	require.Equal(1, bl.NumOrders)
	require.Equal(map[int]int{0: 3, 1: 2}, bl.Demand[0])
	require.Equal(instance.Wave{LB: 1, UB: 100}, bl.Wave)
}

func TestParseInstance_RejectsTruncatedFile(t *testing.T) {
	_, _, err := ioformat.ParseInstance(strings.NewReader("2 1 1\n1 0 3\n"))
	require.ErrorIs(t, err, instance.ErrInvalidInstance)
	require.ErrorIs(t, err, ioformat.ErrTruncated)
}

func TestParseInstance_RejectsMalformedHeader(t *testing.T) {
	_, _, err := ioformat.ParseInstance(strings.NewReader("1 2\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedLine)
}

func TestParseInstance_RejectsDemandCountMismatch(t *testing.T) {
	_, _, err := ioformat.ParseInstance(strings.NewReader("1 2 1\n2 0 3\n1 0 3 1 2\n1 100\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedLine)
}

func TestParseInstance_RejectsOutOfRangeItem(t *testing.T) {
	_, _, err := ioformat.ParseInstance(strings.NewReader("1 2 1\n1 5 3\n1 0 3 1 2\n1 100\n"))
	require.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestParseInstance_RejectsBadBounds(t *testing.T) {
	_, _, err := ioformat.ParseInstance(strings.NewReader("1 2 1\n1 0 3\n1 0 3\n100 1\n"))
	require.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestParseInstance_SkipsBlankLines(t *testing.T) {
	withBlanks := "1 2 1\n\n1 0 3 1 2\n\n1 0 3 1 2\n\n1 100\n"
	_, _, err := ioformat.ParseInstance(strings.NewReader(withBlanks))
	require.NoError(t, err)
}
