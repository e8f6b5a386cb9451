package dataflow_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/dataflow"
	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/pearray"
	"github.com/sarchlab/tenet/statement"
)

var _ = Describe("Neighbor", func() {
	var df *dataflow.Dataflow

	BeforeEach(func() {
		df = setup{
			st: statement.Builder{}.
				WithDomain("{ S[i, j] : 0 <= i < 3 and 0 <= j < 4 }").
				WithAccess("A", statement.Read, "S[i, j] -> A[j]"),
			pe: pearray.NewBuilder().
				WithWidth(3).
				WithTopology(pearray.Linear),
			space: "S[i, j] -> PE[i]",
			time:  "S[i, j] -> T[j]",
		}.build()
	})

	It("should step back one cycle at a time", func() {
		prev := df.MapTimeToPrev(1, false)

		Expect(prev.Len()).To(Equal(3))
		Expect(prev.Contains(iset.NewTuple("T", 3), iset.NewTuple("T", 2))).To(BeTrue())
		Expect(prev.Contains(iset.NewTuple("T", 0), iset.NewTuple("T", 0))).To(BeFalse())
	})

	It("should include every earlier cycle up to the distance", func() {
		within := df.MapTimeToPrev(2, true)

		Expect(within.Len()).To(Equal(9))
		Expect(df.MapTimeToPrev(2, false).Len()).To(Equal(2))
	})

	It("should relate exact and within distances", func() {
		for d := 1; d <= 3; d++ {
			within := df.MapSpaceToNeighbor(d, true)
			closer := df.MapSpaceToNeighbor(d-1, true)
			exact := df.MapSpaceToNeighbor(d, false)

			Expect(closer.Union(exact).IsEqual(within)).To(BeTrue())
			Expect(exact.Intersect(closer).IsEmpty()).To(BeTrue())
		}
	})

	It("should treat distance zero as the identity", func() {
		Expect(df.MapSpaceToNeighbor(0, false).IsEqual(df.SpaceDomain().Identity())).To(BeTrue())
		Expect(df.MapTimeToPrev(0, true).IsEqual(df.TimeDomain().Identity())).To(BeTrue())
	})

	It("should follow the interconnect", func() {
		hop := df.MapSpaceToNeighbor(1, false)

		Expect(hop.Len()).To(Equal(4))
		Expect(hop.Contains(iset.NewTuple("PE", 1), iset.NewTuple("PE", 0))).To(BeTrue())
		Expect(hop.Contains(iset.NewTuple("PE", 0), iset.NewTuple("PE", 2))).To(BeFalse())
		Expect(df.MapSpaceToNeighbor(2, false).
			Contains(iset.NewTuple("PE", 0), iset.NewTuple("PE", 2))).To(BeTrue())
	})

	It("should exclude the point itself unless asked", func() {
		opts := dataflow.DefaultNeighborOptions()
		self := df.SpaceTimeDomain().Identity()

		Expect(df.MapSpaceTimeToNeighbor(opts).Intersect(self).IsEmpty()).To(BeTrue())

		opts.IncludeSelf = true
		Expect(self.IsSubset(df.MapSpaceTimeToNeighbor(opts))).To(BeTrue())
	})

	It("should relate space-time points to the data they touch", func() {
		access := df.MapSpaceTimeToAccess("A", statement.Read)
		at := iset.Wrap(iset.NewTuple("PE", 2), iset.NewTuple("T", 1))

		Expect(access.Len()).To(Equal(12))
		Expect(access.Contains(at, iset.NewTuple("A", 1))).To(BeTrue())
	})

	It("should order multi-dimensional cycles lexicographically", func() {
		df = setup{
			st: statement.Builder{}.
				WithDomain("{ S[i] : 0 <= i < 4 }").
				WithAccess("A", statement.Read, "S[i] -> A[i]"),
			pe:    singlePE(),
			space: "S[i] -> PE[0, 0]",
			time:  "S[i] -> T[floord(i, 2), i % 2]",
		}.build()

		prev := df.MapTimeToPrev(1, false)

		Expect(prev.Contains(iset.NewTuple("T", 1, 0), iset.NewTuple("T", 0, 1))).To(BeTrue())
		Expect(prev.Len()).To(Equal(3))
	})

	It("should panic on a negative distance", func() {
		Expect(func() { df.MapTimeToPrev(-1, true) }).To(Panic())
	})
})
