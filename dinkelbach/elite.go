package dinkelbach

import "github.com/fabiolinhares/wavepicker/instance"

// EliteSink receives every distinct feasible Solution the outer loop
// encounters (spec §4.5 step 5: "Keep every distinct S encountered and
// offer each to the elite pool"). Package ledger's *Ledger implements this;
// dinkelbach depends only on the interface so it never imports ledger.
type EliteSink interface {
	Offer(sol instance.Solution)
}
