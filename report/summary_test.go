package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/report"
)

func TestSummary_Feasible(t *testing.T) {
	var buf strings.Builder
	run := report.Run{
		InstanceName: "instance_0001.txt",
		Solution:     instance.NewSolution([]int{0, 1}, []int{0}, 7),
		Elapsed:      12 * time.Millisecond,
	}
	report.Summary(&buf, run)
	require.Contains(t, buf.String(), "orders:2")
	require.Contains(t, buf.String(), "aisles:1")
	require.Contains(t, buf.String(), "units:7")
}

func TestSummary_Infeasible(t *testing.T) {
	var buf strings.Builder
	report.Summary(&buf, report.Run{InstanceName: "bad.txt", Solution: instance.Infeasible()})
	require.Contains(t, buf.String(), "infeasible")
}

func TestFullTable_Infeasible(t *testing.T) {
	var buf strings.Builder
	report.FullTable(&buf, report.Run{InstanceName: "bad.txt", Solution: instance.Infeasible()})
	require.Contains(t, buf.String(), "no feasible wave")
}

func TestFullTable_Feasible(t *testing.T) {
	var buf strings.Builder
	run := report.Run{
		InstanceName: "ok.txt",
		Solution:     instance.NewSolution([]int{0}, []int{0}, 5),
	}
	report.FullTable(&buf, run)
	require.Contains(t, buf.String(), "ok.txt")
	require.Contains(t, buf.String(), "objective")
}
