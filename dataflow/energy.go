package dataflow

import (
	"fmt"

	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/statement"
)

// L1Read counts the accesses to the PE-local buffer that read a tensor. A
// tensor that is both read and written is read once towards the PE and once
// towards the shared buffer.
func (d *Dataflow) L1Read(tensor string, kind statement.AccessKind) (float64, error) {
	return d.levelVolume(kind, func(k statement.AccessKind) (float64, error) {
		return d.TotalVolume(tensor, k)
	})
}

// L1Write counts the accesses to the PE-local buffer that write a tensor,
// doubled the same way as L1Read.
func (d *Dataflow) L1Write(tensor string, kind statement.AccessKind) (float64, error) {
	return d.L1Read(tensor, kind)
}

// L2Read counts the reads of a tensor from the shared buffer. Only unique
// accesses reach it.
func (d *Dataflow) L2Read(
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
) (float64, error) {
	return d.levelVolume(kind, func(k statement.AccessKind) (float64, error) {
		return d.UniqueVolume(tensor, k, neighbor)
	})
}

// L2Write counts the writes of a tensor to the shared buffer, doubled the
// same way as L2Read.
func (d *Dataflow) L2Write(
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
) (float64, error) {
	return d.L2Read(tensor, kind, neighbor)
}

func (d *Dataflow) levelVolume(
	kind statement.AccessKind,
	volume func(statement.AccessKind) (float64, error),
) (float64, error) {
	if kind != statement.ReadWrite {
		return volume(kind)
	}

	r, err := volume(statement.Read)
	if err != nil {
		return 0, err
	}

	w, err := volume(statement.Write)
	if err != nil {
		return 0, err
	}

	return r + w, nil
}

// Energy adds the MAC energy to the buffer traffic of every input and output
// tensor, each weighted by the energy model.
func (d *Dataflow) Energy(neighbor iset.Map) (float64, error) {
	macs, err := d.MACNum()
	if err != nil {
		return 0, err
	}

	energy := macs * d.energy.MAC
	for _, t := range d.tensorRoles() {
		l1, err := d.tensorL1(t.name, t.kind)
		if err != nil {
			return 0, fmt.Errorf("energy: %w", err)
		}

		l2, err := d.tensorL2(t.name, t.kind, neighbor)
		if err != nil {
			return 0, fmt.Errorf("energy: %w", err)
		}

		energy += d.energy.L1*l1 + d.energy.L2*l2
	}

	Trace("energy", "dataflow", d.name, "value", energy)

	return energy, nil
}

func (d *Dataflow) tensorL1(tensor string, kind statement.AccessKind) (float64, error) {
	r, err := d.L1Read(tensor, kind)
	if err != nil {
		return 0, err
	}

	w, err := d.L1Write(tensor, kind)
	if err != nil {
		return 0, err
	}

	return r + w, nil
}

func (d *Dataflow) tensorL2(
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
) (float64, error) {
	r, err := d.L2Read(tensor, kind, neighbor)
	if err != nil {
		return 0, err
	}

	w, err := d.L2Write(tensor, kind, neighbor)
	if err != nil {
		return 0, err
	}

	return r + w, nil
}

type tensorRole struct {
	name string
	kind statement.AccessKind
}

// tensorRoles lists every tensor once. A tensor that is both an input and an
// output takes the ReadWrite role.
func (d *Dataflow) tensorRoles() []tensorRole {
	inputs, outputs := d.st.Tensors()

	isOutput := make(map[string]bool, len(outputs))
	for _, t := range outputs {
		isOutput[t] = true
	}

	var roles []tensorRole
	seen := make(map[string]bool)
	for _, t := range inputs {
		if seen[t] {
			continue
		}
		seen[t] = true

		kind := statement.Read
		if isOutput[t] {
			kind = statement.ReadWrite
		}
		roles = append(roles, tensorRole{name: t, kind: kind})
	}

	for _, t := range outputs {
		if !seen[t] {
			seen[t] = true
			roles = append(roles, tensorRole{name: t, kind: statement.Write})
		}
	}

	return roles
}
