// Package report renders a solved instance for a human reader: a compact
// one-line summary for routine runs and an optional full table breaking
// down the wave, the Dinkelbach convergence trace and branch-and-bound
// search statistics. Grounded on the original source's
// formatacao_terminal.h/visualizador_resultados.h box-drawing summaries
// and polybot's internal/adapters/notify.Console compact/full dual-mode
// rendering, using github.com/olekukonko/tablewriter for the full table.
package report
