package qsim

/*
JointProbability returns the probability that measuring the parity of the
given qubits in the computational basis yields 1: the summed squared
magnitude of every stored state with an odd number of those bits set.
*/
func (sim *Simulator) JointProbability(ids []int) (float64, error) {
	locs, err := sim.resolveDistinct("joint_probability", ids)
	if err != nil {
		return 0, err
	}
	return sim.probability(maskOf(locs)), nil
}

// Measure measures one qubit in the computational basis and collapses the state onto the outcome.
func (sim *Simulator) Measure(id int) (bool, error) {
	loc, err := sim.locate("measure", id)
	if err != nil {
		return false, err
	}

	outcome := sim.measureAt(loc)
	sim.metrics.recordMeasurement(sim.state.Len())
	sim.logger.Debug("measure", "id", id, "loc", loc, "outcome", outcome)
	return outcome, nil
}

/*
JointMeasure measures the parity of the given qubits with a single sample and
collapses the whole group onto that one outcome.
*/
func (sim *Simulator) JointMeasure(ids []int) (bool, error) {
	locs, err := sim.resolveDistinct("joint_measure", ids)
	if err != nil {
		return false, err
	}

	outcome := sim.measureMask(maskOf(locs))
	sim.metrics.recordMeasurement(sim.state.Len())
	sim.logger.Debug("joint_measure", "ids", ids, "outcome", outcome, "entries", sim.state.Len())
	return outcome, nil
}

func (sim *Simulator) resolveDistinct(op string, ids []int) ([]uint, error) {
	locs, err := sim.resolveAll(op, ids)
	if err != nil {
		return nil, err
	}

	if err := sim.checkDistinct(op, locs); err != nil {
		return nil, err
	}

	return locs, nil
}

func (sim *Simulator) measureAt(loc uint) bool {
	return sim.measureMask(maskOf([]uint{loc}))
}

func (sim *Simulator) measureMask(mask Index) bool {
	outcome := sim.sampler.Float64() < sim.probability(mask)
	sim.collapse(mask, outcome)
	return outcome
}

func (sim *Simulator) probability(mask Index) float64 {
	total := 0.0
	for k, v := range sim.state.amps {
		if k.Parity(mask) {
			total += normSqr(v)
		}
	}
	return min(total, 1)
}

// collapse keeps the states whose parity under mask equals outcome and renormalizes them.
func (sim *Simulator) collapse(mask Index, outcome bool) {
	for k := range sim.state.amps {
		if k.Parity(mask) != outcome {
			delete(sim.state.amps, k)
		}
	}
	sim.state.normalize()
}
