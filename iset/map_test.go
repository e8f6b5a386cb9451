package iset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/iset"
)

func pair(from iset.Tuple, to iset.Tuple) iset.Pair {
	return iset.Pair{From: from, To: to}
}

func s(c int) iset.Tuple { return iset.NewTuple("S", c) }
func a(c int) iset.Tuple { return iset.NewTuple("A", c) }

var _ = Describe("Map", func() {
	var m iset.Map

	BeforeEach(func() {
		m = iset.NewMap(
			pair(s(0), a(0)),
			pair(s(1), a(0)),
			pair(s(1), a(1)),
			pair(s(2), a(2)),
		)
	})

	It("should expose domain and range", func() {
		Expect(m.Domain().IsEqual(iset.NewSet(s(0), s(1), s(2)))).To(BeTrue())
		Expect(m.Range().IsEqual(iset.NewSet(a(0), a(1), a(2)))).To(BeTrue())
	})

	It("should reverse", func() {
		r := m.Reverse()
		Expect(r.Len()).To(Equal(4))
		Expect(r.Contains(a(0), s(1))).To(BeTrue())
		Expect(r.Reverse().IsEqual(m)).To(BeTrue())
	})

	It("should combine relations", func() {
		o := iset.NewMap(pair(s(0), a(0)), pair(s(3), a(3)))

		Expect(m.Union(o).Len()).To(Equal(5))
		Expect(m.Intersect(o).IsEqual(iset.NewMap(pair(s(0), a(0))))).To(BeTrue())
		Expect(m.Subtract(o).Len()).To(Equal(3))
		Expect(m.Subtract(m).IsEmpty()).To(BeTrue())
		Expect(o.Intersect(m).IsSubset(m)).To(BeTrue())
	})

	It("should restrict domain and range", func() {
		Expect(m.IntersectDomain(iset.NewSet(s(1))).Len()).To(Equal(2))
		Expect(m.IntersectRange(iset.NewSet(a(0))).Len()).To(Equal(2))
	})

	It("should compose", func() {
		next := iset.NewMap(pair(a(0), iset.NewTuple("B", 7)), pair(a(2), iset.NewTuple("B", 9)))

		c := m.ApplyRange(next)

		Expect(c.String()).To(Equal("{ S[0] -> B[7]; S[1] -> B[7]; S[2] -> B[9] }"))
	})

	It("should pair relations", func() {
		space := iset.NewMap(pair(iset.NewTuple("PE", 0), iset.NewTuple("PE", 1)))
		time := iset.NewMap(
			pair(iset.NewTuple("T", 1), iset.NewTuple("T", 0)),
			pair(iset.NewTuple("T", 2), iset.NewTuple("T", 1)),
		)

		p := space.Product(time)

		Expect(p.Len()).To(Equal(2))
		from := iset.Wrap(iset.NewTuple("PE", 0), iset.NewTuple("T", 2))
		to := iset.Wrap(iset.NewTuple("PE", 1), iset.NewTuple("T", 1))
		Expect(p.Contains(from, to)).To(BeTrue())
		Expect(from.String()).To(Equal("[PE[0] -> T[2]]"))
	})

	It("should pair ranges", func() {
		space := iset.NewMap(pair(s(0), iset.NewTuple("PE", 0)), pair(s(1), iset.NewTuple("PE", 1)))
		time := iset.NewMap(pair(s(0), iset.NewTuple("T", 5)))

		st := space.RangeProduct(time)

		Expect(st.Len()).To(Equal(1))
		Expect(st.Contains(s(0), iset.Wrap(iset.NewTuple("PE", 0), iset.NewTuple("T", 5)))).To(BeTrue())
	})

	It("should keep the largest target", func() {
		Expect(m.LexMax().String()).To(Equal("{ S[0] -> A[0]; S[1] -> A[1]; S[2] -> A[2] }"))
	})

	It("should count targets per source", func() {
		c := m.Card()

		n, ok := c.At(s(1))
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(int64(2)))

		_, err := c.Value()
		Expect(err).To(MatchError(iset.ErrNotReduced))

		v, err := c.Sum().Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(4)))
	})

	It("should treat the zero value as empty", func() {
		var z iset.Map
		Expect(z.IsEmpty()).To(BeTrue())
		Expect(z.Union(m).IsEqual(m)).To(BeTrue())
		v, err := z.Card().Sum().Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeZero())
	})

	It("should stay symbolic", func() {
		sym := iset.SymbolicMap("N")

		Expect(m.ApplyRange(sym).IsSymbolic()).To(BeTrue())
		Expect(sym.Product(m).Params()).To(Equal([]string{"N"}))
		Expect(sym.Domain().IsSymbolic()).To(BeTrue())

		_, err := sym.Card().Sum().Value()
		Expect(err).To(MatchError(iset.ErrSymbolicCount))
	})
})
