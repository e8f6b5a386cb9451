package pearray_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/pearray"
)

func pe(coords ...int) iset.Tuple {
	return iset.NewTuple("PE", coords...)
}

var _ = Describe("Builder", func() {
	It("should build a mesh", func() {
		a, err := pearray.NewBuilder().
			WithWidth(3).
			WithHeight(2).
			WithBandwidth(64).
			Build("mesh")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Name()).To(Equal("mesh"))
		Expect(a.Topology()).To(Equal(pearray.Mesh))
		Expect(a.Domain().Len()).To(Equal(6))
		// 2 * (2 * 2 horizontal + 3 vertical) directed links.
		Expect(a.Interconnect().Len()).To(Equal(14))
		Expect(a.Interconnect().Contains(pe(1, 0), pe(2, 0))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(1, 0), pe(1, 1))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(0, 0), pe(1, 1))).To(BeFalse())
		Expect(a.Bandwidth()).To(Equal(64.0))
		Expect(a.AvgLatency()).To(Equal(1.0))
		Expect(a.Freq()).To(Equal(1 * sim.GHz))
	})

	It("should wrap a torus", func() {
		a, err := pearray.NewBuilder().
			WithWidth(3).
			WithHeight(3).
			WithTopology(pearray.Torus).
			Build("torus")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Interconnect().Len()).To(Equal(36))
		Expect(a.Interconnect().Contains(pe(2, 1), pe(0, 1))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(1, 0), pe(1, 2))).To(BeTrue())
	})

	It("should connect a systolic array towards the West and the South", func() {
		a, err := pearray.NewBuilder().
			WithWidth(2).
			WithHeight(2).
			WithTopology(pearray.Systolic).
			Build("systolic")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Interconnect().Len()).To(Equal(4))
		Expect(a.Interconnect().Contains(pe(1, 1), pe(0, 1))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(1, 1), pe(1, 0))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(0, 1), pe(1, 1))).To(BeFalse())
	})

	It("should build a linear array", func() {
		a, err := pearray.NewBuilder().
			WithWidth(4).
			WithTopology(pearray.Linear).
			Build("linear")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Domain().Contains(pe(3))).To(BeTrue())
		Expect(a.Interconnect().Len()).To(Equal(6))
		Expect(a.Interconnect().Contains(pe(0), pe(1))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(1), pe(0))).To(BeTrue())
	})

	It("should add custom links within the domain", func() {
		a, err := pearray.NewBuilder().
			WithDomain("{ PE[x, y] : 0 <= x < 3 and 0 <= y < 1 }").
			WithTopology(pearray.Custom).
			WithLink("PE[x, y] -> PE[x + 2, y]").
			Build("custom")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Interconnect().String()).To(Equal("{ PE[0, 0] -> PE[2, 0] }"))
	})

	It("should clone", func() {
		a, _ := pearray.NewBuilder().WithWidth(2).WithHeight(2).Build("mesh")

		c := a.Clone()

		Expect(c).NotTo(BeIdenticalTo(a))
		Expect(c.Interconnect().IsEqual(a.Interconnect())).To(BeTrue())
	})

	It("should reject a bad bandwidth", func() {
		_, err := pearray.NewBuilder().WithBandwidth(0).Build("pe")

		Expect(err).To(MatchError(pearray.ErrBandwidth))
	})

	It("should reject an empty array", func() {
		_, err := pearray.NewBuilder().WithWidth(0).Build("pe")

		Expect(err).To(MatchError(pearray.ErrEmptyArray))
	})

	It("should reject an unknown topology", func() {
		_, err := pearray.NewBuilder().WithTopology("hypercube").Build("pe")

		Expect(err).To(MatchError(pearray.ErrUnknownTopology))
	})

	It("should reject a linear topology on a 2-D domain", func() {
		_, err := pearray.NewBuilder().
			WithDomain("{ PE[x, y] : 0 <= x < 2 and 0 <= y < 2 }").
			WithTopology(pearray.Linear).
			Build("pe")

		Expect(err).To(MatchError(pearray.ErrTopologyDim))
	})
})

var _ = Describe("Side", func() {
	It("should step one hop towards a distinct neighbor", func() {
		seen := make(map[[2]int]bool)
		for _, s := range pearray.Sides {
			dx, dy := s.Offset()
			Expect(dx*dx + dy*dy).To(Equal(1))
			seen[[2]int{dx, dy}] = true
		}
		Expect(seen).To(HaveLen(4))
	})

	It("should panic on an invalid side", func() {
		Expect(func() { pearray.Side(9).Offset() }).To(Panic())
	})
})

var _ = Describe("Load", func() {
	It("should load a torus", func() {
		a, err := pearray.Load("testdata/torus.yaml")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Name()).To(Equal("torus4x4"))
		Expect(a.Domain().Len()).To(Equal(16))
		Expect(a.Interconnect().Len()).To(Equal(64))
		Expect(a.AvgLatency()).To(Equal(2.0))
		Expect(a.Freq()).To(Equal(2 * sim.GHz))
	})

	It("should load custom links", func() {
		a, err := pearray.Load("testdata/custom.yaml")

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Domain().Len()).To(Equal(6))
		Expect(a.Interconnect().Len()).To(Equal(8))
		Expect(a.Interconnect().Contains(pe(3), pe(1))).To(BeTrue())
		Expect(a.Interconnect().Contains(pe(3), pe(5))).To(BeTrue())
	})

	It("should override a parameter of the file", func() {
		a, err := pearray.Load("testdata/custom.yaml", pearray.OverrideParam("P", 10))

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Domain().Len()).To(Equal(10))
		Expect(a.Interconnect().Len()).To(Equal(16))
	})

	It("should reject an explicit zero bandwidth", func() {
		_, err := pearray.Parse([]byte("width: 2\nbandwidth: 0\n"))

		Expect(err).To(MatchError(pearray.ErrBandwidth))
	})

	It("should default the bandwidth when it is omitted", func() {
		a, err := pearray.Parse([]byte("width: 2\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Bandwidth()).To(Equal(1.0))
	})

	It("should report a missing file", func() {
		_, err := pearray.Load("testdata/missing.yaml")

		Expect(err).To(HaveOccurred())
	})
})
