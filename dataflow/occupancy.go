package dataflow

import "fmt"

// DomainSize counts the iterations.
func (d *Dataflow) DomainSize() (float64, error) {
	v, err := scalar(d.st.Domain().Card())
	if err != nil {
		return 0, fmt.Errorf("domain size: %w", err)
	}

	return v, nil
}

// PENum counts the PEs that run at least one iteration.
func (d *Dataflow) PENum() (float64, error) {
	v, err := scalar(d.SpaceDomain().Card())
	if err != nil {
		return 0, fmt.Errorf("PE count: %w", err)
	}

	return v, nil
}

// ActivePENum is the same as PENum. Idle PEs of the array are not counted.
func (d *Dataflow) ActivePENum() (float64, error) {
	return d.PENum()
}

// TotalTime counts the cycles in which at least one iteration runs.
func (d *Dataflow) TotalTime() (float64, error) {
	v, err := scalar(d.TimeDomain().Card())
	if err != nil {
		return 0, fmt.Errorf("total time: %w", err)
	}

	return v, nil
}

// AverageActivePENum is the number of busy PEs averaged over the cycles.
func (d *Dataflow) AverageActivePENum() (float64, error) {
	st, err := scalar(d.SpaceTimeDomain().Card())
	if err != nil {
		return 0, fmt.Errorf("average active PEs: %w", err)
	}

	t, err := d.TotalTime()
	if err != nil {
		return 0, err
	}

	if t == 0 {
		return 0, ErrEmptyTimeDomain
	}

	Trace("average active PEs", "dataflow", d.name, "value", st/t)

	return st / t, nil
}

// MACNum counts the MACs of all iterations.
func (d *Dataflow) MACNum() (float64, error) {
	size, err := d.DomainSize()
	if err != nil {
		return 0, err
	}

	return size * float64(d.macsPerInstance), nil
}

// MACNumPerPE divides the MACs over the active PEs.
func (d *Dataflow) MACNumPerPE() (float64, error) {
	macs, err := d.MACNum()
	if err != nil {
		return 0, err
	}

	pes, err := d.PENum()
	if err != nil {
		return 0, err
	}

	if pes == 0 {
		return 0, ErrNoActivePE
	}

	return macs / pes, nil
}
