package iset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/iset"
)

func points(name string, coords ...int) []iset.Tuple {
	out := make([]iset.Tuple, len(coords))
	for i, c := range coords {
		out[i] = iset.NewTuple(name, c)
	}
	return out
}

var _ = Describe("Set", func() {
	var a, b iset.Set

	BeforeEach(func() {
		a = iset.NewSet(points("S", 0, 1, 2, 3)...)
		b = iset.NewSet(points("S", 2, 3, 4)...)
	})

	It("should combine sets", func() {
		Expect(a.Union(b).Len()).To(Equal(5))
		Expect(a.Intersect(b).IsEqual(iset.NewSet(points("S", 2, 3)...))).To(BeTrue())
		Expect(a.Subtract(b).IsEqual(iset.NewSet(points("S", 0, 1)...))).To(BeTrue())
	})

	It("should not modify its operands", func() {
		a.Union(b)
		a.Subtract(b)
		Expect(a.Len()).To(Equal(4))
		Expect(b.Len()).To(Equal(3))
	})

	It("should keep spaces apart", func() {
		s := iset.NewSet(iset.NewTuple("S", 0), iset.NewTuple("T", 0), iset.NewTuple("S", 0, 0))
		Expect(s.Len()).To(Equal(3))
		Expect(s.Contains(iset.NewTuple("T", 0))).To(BeTrue())
		Expect(s.Contains(iset.NewTuple("T", 1))).To(BeFalse())
	})

	It("should list tuples in order", func() {
		s := iset.NewSet(iset.NewTuple("S", 1, 0), iset.NewTuple("S", 0, 5), iset.NewTuple("S", 0, 1))
		Expect(s.String()).To(Equal("{ S[0, 1]; S[0, 5]; S[1, 0] }"))
		Expect(iset.Set{}.String()).To(Equal("{ }"))
	})

	It("should apply a relation", func() {
		m := iset.NewMap(
			iset.Pair{From: iset.NewTuple("S", 0), To: iset.NewTuple("A", 0)},
			iset.Pair{From: iset.NewTuple("S", 1), To: iset.NewTuple("A", 0)},
			iset.Pair{From: iset.NewTuple("S", 9), To: iset.NewTuple("A", 9)},
		)

		img := a.Apply(m)

		Expect(img.IsEqual(iset.NewSet(iset.NewTuple("A", 0)))).To(BeTrue())
	})

	It("should build the identity", func() {
		id := a.Identity()
		Expect(id.Len()).To(Equal(4))
		Expect(id.Contains(iset.NewTuple("S", 2), iset.NewTuple("S", 2))).To(BeTrue())
	})

	It("should count points", func() {
		v, err := a.Card().Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(4)))
	})

	Context("when symbolic", func() {
		var s iset.Set

		BeforeEach(func() {
			s = iset.SymbolicSet("N")
		})

		It("should propagate through every operation", func() {
			Expect(s.Union(a).IsSymbolic()).To(BeTrue())
			Expect(a.Intersect(s).IsSymbolic()).To(BeTrue())
			Expect(a.Subtract(s).Params()).To(Equal([]string{"N"}))
			Expect(s.Identity().IsSymbolic()).To(BeTrue())
			Expect(s.Union(iset.SymbolicSet("M")).Params()).To(Equal([]string{"M", "N"}))
		})

		It("should never be known empty", func() {
			Expect(s.IsEmpty()).To(BeFalse())
			Expect(s.IsSubset(a)).To(BeFalse())
		})

		It("should refuse to count", func() {
			_, err := s.Card().Value()
			Expect(err).To(MatchError(iset.ErrSymbolicCount))
		})
	})
})

var _ = Describe("Tuple", func() {
	It("should split a wrapped tuple into its factors", func() {
		pe := iset.NewTuple("PE", 1, 2)
		t := iset.NewTuple("T", 3)
		st := iset.Wrap(pe, t)

		a, b, ok := st.Unwrap()
		Expect(ok).To(BeTrue())
		Expect(a.Key()).To(Equal(pe.Key()))
		Expect(b.Key()).To(Equal(t.Key()))
		Expect(st.String()).To(Equal("[PE[1, 2] -> T[3]]"))

		_, _, ok = pe.Unwrap()
		Expect(ok).To(BeFalse())
	})
})
