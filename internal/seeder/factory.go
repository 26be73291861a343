package seeder

// Factory builds the synthetic entities. Generators are pure functions of
// the injected random source and the previously generated collections
// passed to them; they perform no I/O.
type Factory struct {
	rng *Rand
	seq *Sequencer
}

func NewFactory(rng *Rand) *Factory {
	return &Factory{rng: rng, seq: NewSequencer(rng)}
}
