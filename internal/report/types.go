// Package report loads alignment engine statistics reports into typed values.
package report

// Report is a statistics file written by the alignment engine.
type Report struct {
	Path       string          // File the report was loaded from
	Layout     Layout          // Shape the result was found in
	Result     AlignmentResult // Alignment result of the run
	Parameters map[string]any  // Remaining top-level entries, never interpreted
}

// AlignmentResult is either WithTarget or WithoutTarget.
// No other implementations exist outside this package.
type AlignmentResult interface {
	// Variant returns the tag the engine uses for this result.
	Variant() string
	// Stats returns the statistics every variant carries.
	Stats() Statistics

	isAlignmentResult()
}

// WithTarget is a run that reached its target and produced an alignment.
type WithTarget struct {
	Alignment  Alignment
	Statistics Statistics
}

func (WithTarget) Variant() string { return TagWithTarget }
func (r WithTarget) Stats() Statistics { return r.Statistics }
func (WithTarget) isAlignmentResult() {}

// WithoutTarget is a run that stopped before reaching its target.
type WithoutTarget struct {
	Statistics Statistics
}

func (WithoutTarget) Variant() string { return TagWithoutTarget }
func (r WithoutTarget) Stats() Statistics { return r.Statistics }
func (WithoutTarget) isAlignmentResult() {}

// Alignment is an ordered path of operations. Order is significant.
type Alignment []Operation

// Steps returns the total number of steps, counting run lengths.
func (a Alignment) Steps() uint64 {
	var n uint64
	for _, op := range a {
		n += op.Count
	}
	return n
}

// Operation is one entry of an alignment path.
type Operation struct {
	Kind  string // e.g. "PrimaryMatch", "TemplateSwitchEntrance"
	Count uint64 // Run length as emitted; 1 for a bare operation
	Data  any    // Variant payload, nil for unit operations
}

// Statistics holds the run statistics. Only Cost is interpreted.
type Statistics struct {
	Cost  uint64
	Extra map[string]any
}

// Variant tags used by the engine.
const (
	TagWithTarget    = "WithTarget"
	TagWithoutTarget = "WithoutTarget"
)
