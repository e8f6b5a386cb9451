package dataflow

import (
	"fmt"
	"math"

	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/statement"
)

// IngressDelay is the number of cycles needed to bring the unique reads of a
// tensor into the array. An empty tensor name covers every tensor.
func (d *Dataflow) IngressDelay(neighbor iset.Map, tensor string) (float64, error) {
	return d.transferDelay(neighbor, tensor, statement.Read)
}

// EgressDelay is the number of cycles needed to drain the unique writes of a
// tensor out of the array. An empty tensor name covers every tensor.
func (d *Dataflow) EgressDelay(neighbor iset.Map, tensor string) (float64, error) {
	return d.transferDelay(neighbor, tensor, statement.Write)
}

func (d *Dataflow) transferDelay(
	neighbor iset.Map,
	tensor string,
	kind statement.AccessKind,
) (float64, error) {
	unique, err := d.UniqueVolume(tensor, kind, neighbor)
	if err != nil {
		return 0, err
	}

	bits := unique * float64(d.bitsPerItem)

	return bits/d.pe.Bandwidth() + d.pe.AvgLatency() - 1, nil
}

// ComputationDelay is the number of cycles each PE spends on MACs, one MAC
// per cycle.
func (d *Dataflow) ComputationDelay() (float64, error) {
	return d.MACNumPerPE()
}

// Delay bounds the execution by its slowest part, assuming the others
// overlap with it.
func (d *Dataflow) Delay(neighbor iset.Map) (float64, error) {
	in, err := d.IngressDelay(neighbor, "")
	if err != nil {
		return 0, err
	}

	out, err := d.EgressDelay(neighbor, "")
	if err != nil {
		return 0, err
	}

	comp, err := d.ComputationDelay()
	if err != nil {
		return 0, err
	}

	delay := math.Max(math.Max(in, out), comp)
	Trace("delay", "dataflow", d.name,
		"ingress", in, "egress", out, "computation", comp, "value", delay)

	return delay, nil
}

// DelaySeconds converts Delay into seconds at the clock of the PE array.
func (d *Dataflow) DelaySeconds(neighbor iset.Map) (float64, error) {
	cycles, err := d.Delay(neighbor)
	if err != nil {
		return 0, err
	}

	freq := float64(d.pe.Freq())
	if freq <= 0 {
		return 0, fmt.Errorf("delay in seconds: invalid frequency %v", freq)
	}

	return cycles / freq, nil
}
