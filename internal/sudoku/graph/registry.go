package graph

import "sudoku-graph/pkg/constants"

// TechniqueDescriptor holds metadata about one pipeline technique,
// including whether it is currently enabled in a given registry.
type TechniqueDescriptor struct {
	Slug        string
	Tier        string
	Description string
	Technique   Technique
	Enabled     bool
	Order       int
}

// TechniqueRegistry holds every technique the driver can pull from,
// enable/disable state included, so callers can isolate a single
// technique for testing or cap a solve at a difficulty tier without
// rebuilding the pipeline from scratch.
type TechniqueRegistry struct {
	descriptors map[string]*TechniqueDescriptor
	order       []string // slugs, in pipeline order
}

// NewTechniqueRegistry builds the default pipeline: Initializer first,
// then the safety-net singles rule, the empty-fact contradiction check,
// the confinement rule, a
// low-rank Sledgehammer pass, ColorChain, and finally a higher-rank
// Sledgehammer pass for the patterns low-rank subsets can't reach.
func NewTechniqueRegistry() *TechniqueRegistry {
	r := &TechniqueRegistry{descriptors: make(map[string]*TechniqueDescriptor)}

	r.register(&TechniqueDescriptor{
		Slug: "initializer", Tier: constants.TierSimple,
		Description: "Forces every given's claim true and propagates the consequence",
		Technique:   NewInitializer(), Enabled: true, Order: 1,
	})
	r.register(&TechniqueDescriptor{
		Slug: "organ-failure", Tier: constants.TierSimple,
		Description: "Naked/hidden single: a fact with one surviving claim proves it",
		Technique:   NewOrganFailure(), Enabled: true, Order: 2,
	})
	r.register(&TechniqueDescriptor{
		Slug: "cell-death", Tier: constants.TierSimple,
		Description: "Detects a fact driven to zero claims and reports unsatisfiability",
		Technique:   NewCellDeath(), Enabled: true, Order: 3,
	})
	r.register(&TechniqueDescriptor{
		Slug: "value-claim", Tier: constants.TierSimple,
		Description: "Pointing pair / box-line reduction via row-col-box confinement",
		Technique:   NewValueClaim(), Enabled: true, Order: 4,
	})
	r.register(&TechniqueDescriptor{
		Slug: "sledgehammer-low", Tier: constants.TierMedium,
		Description: "Generalized naked subset / fish elimination, rank 2",
		Technique:   NewSledgehammer(2, constants.LowRankSledgehammerK), Enabled: true, Order: 5,
	})
	r.register(&TechniqueDescriptor{
		Slug: "color-chain", Tier: constants.TierHard,
		Description: "XOR-fact bi-coloring: intra-chain, inter-chain and bridge contradictions",
		Technique:   NewColorChain(), Enabled: true, Order: 6,
	})
	r.register(&TechniqueDescriptor{
		Slug: "sledgehammer-high", Tier: constants.TierHard,
		Description: "Generalized naked subset / fish elimination, higher rank",
		Technique:   NewSledgehammer(constants.LowRankSledgehammerK+1, constants.DefaultMaxSledgehammerK), Enabled: true, Order: 7,
	})

	return r
}

func (r *TechniqueRegistry) register(d *TechniqueDescriptor) {
	r.descriptors[d.Slug] = d
	r.order = append(r.order, d.Slug)
}

// SetEnabled toggles one technique by slug. Unknown slugs are a no-op,
// matching the teacher registry's permissive behavior for test harnesses
// that probe slugs defensively.
func (r *TechniqueRegistry) SetEnabled(slug string, enabled bool) {
	if d, ok := r.descriptors[slug]; ok {
		d.Enabled = enabled
	}
}

// Descriptor returns the descriptor for slug, if registered.
func (r *TechniqueRegistry) Descriptor(slug string) (*TechniqueDescriptor, bool) {
	d, ok := r.descriptors[slug]
	return d, ok
}

// Active returns every enabled technique in pipeline order.
func (r *TechniqueRegistry) Active() []Technique {
	var out []Technique
	for _, slug := range r.order {
		d := r.descriptors[slug]
		if d.Enabled {
			out = append(out, d.Technique)
		}
	}
	return out
}

// UpToTier disables every technique whose tier ranks above the given tier,
// mirroring the teacher's CreateSolverUpToTier helper.
func (r *TechniqueRegistry) UpToTier(tier string) {
	rank := map[string]int{
		constants.TierSimple:  0,
		constants.TierMedium:  1,
		constants.TierHard:    2,
		constants.TierExtreme: 3,
	}
	ceiling, ok := rank[tier]
	if !ok {
		return
	}
	for _, d := range r.descriptors {
		d.Enabled = rank[d.Tier] <= ceiling
	}
}

// NewDriverFromRegistry builds a Driver over the registry's currently
// active techniques.
func NewDriverFromRegistry(r *TechniqueRegistry, observer StepObserver) *Driver {
	return NewDriver(observer, r.Active()...)
}
