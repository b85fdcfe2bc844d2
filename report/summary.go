package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/fabiolinhares/wavepicker/dinkelbach"
	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
)

// Run bundles everything one solved instance contributes to a report: the
// published Solution plus whatever diagnostics the caller has on hand
// (Dinkelbach's trace and B&B's node statistics are both optional — a
// coordinator run reports those of the worker that found its best, and
// they are the zero value when the caller has none, e.g. when every worker
// errored; Stats is also zero when the Greedy back-end ran).
type Run struct {
	InstanceName string
	Solution     instance.Solution
	Dinkelbach   dinkelbach.Result
	Stats        innersolver.Stats
	Elapsed      time.Duration
}

// Summary writes a one-line summary of run to w, mirroring
// notify.Console.printCompact: instance name, feasibility, units/aisles,
// objective, elapsed time.
func Summary(w io.Writer, run Run) {
	if run.Solution.IsInfeasible() {
		fmt.Fprintf(w, "[%s] infeasible (%s)\n", run.InstanceName, run.Elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(w, "[%s] orders:%d aisles:%d units:%d objective:%.6f (%s)\n",
		run.InstanceName, len(run.Solution.OrderSet), len(run.Solution.AisleSet),
		run.Solution.TotalUnits, run.Solution.Objective, run.Elapsed.Round(time.Millisecond))
}

// FullTable writes the detailed breakdown mirroring
// visualizador_resultados.h's "RESULTADOS" box and notify.Console's
// printFull: the wave contents, the Dinkelbach convergence trace (if any)
// and B&B search statistics (if any), via tablewriter.
func FullTable(w io.Writer, run Run) {
	fmt.Fprintf(w, "\n=== %s ===\n", run.InstanceName)

	if run.Solution.IsInfeasible() {
		fmt.Fprintln(w, "no feasible wave within [LB,UB] under stock constraints")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	table.Append("orders selected", fmt.Sprintf("%d", len(run.Solution.OrderSet)))
	table.Append("aisles visited", fmt.Sprintf("%d", len(run.Solution.AisleSet)))
	table.Append("total units", fmt.Sprintf("%d", run.Solution.TotalUnits))
	table.Append("objective (F/G)", fmt.Sprintf("%.6f", run.Solution.Objective))
	table.Append("elapsed", run.Elapsed.Round(time.Millisecond).String())
	table.Render()

	if len(run.Dinkelbach.Trace) > 0 {
		fmt.Fprintln(w, "\nDinkelbach convergence:")
		trace := tablewriter.NewWriter(w)
		trace.Header("Iter", "Lambda", "F_k", "G_k", "Objective")
		for _, rec := range run.Dinkelbach.Trace {
			trace.Append(
				fmt.Sprintf("%d", rec.Iter),
				fmt.Sprintf("%.6f", rec.Lambda),
				fmt.Sprintf("%d", rec.FK),
				fmt.Sprintf("%d", rec.GK),
				fmt.Sprintf("%.6f", rec.Objective),
			)
		}
		trace.Render()
		fmt.Fprintf(w, "converged:%v oscillations:%d cycles:%d iterations:%d\n",
			run.Dinkelbach.Converged, run.Dinkelbach.OscillationCount,
			run.Dinkelbach.CycleCount, run.Dinkelbach.Iterations)
	}

	if run.Stats.NodesExplored > 0 {
		fmt.Fprintln(w, "\nBranch-and-bound search statistics:")
		stats := tablewriter.NewWriter(w)
		stats.Header("Stat", "Count")
		stats.Append("nodes explored", fmt.Sprintf("%d", run.Stats.NodesExplored))
		stats.Append("pruned by bound", fmt.Sprintf("%d", run.Stats.PrunedByBound))
		stats.Append("pruned by infeasibility", fmt.Sprintf("%d", run.Stats.PrunedByInfeasibility))
		stats.Append("pruned by coverage cut", fmt.Sprintf("%d", run.Stats.PrunedByCoverageCut))
		stats.Append("pruned by dominance cut", fmt.Sprintf("%d", run.Stats.PrunedByDominanceCut))
		stats.Append("timed out", fmt.Sprintf("%v", run.Stats.TimedOut))
		stats.Render()
	}

	fmt.Fprintln(w)
}
