package iset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/iset"
)

var _ = Describe("Lexicographic order", func() {
	var t iset.Set

	BeforeEach(func() {
		t = iset.NewSet(
			iset.NewTuple("T", 0, 0),
			iset.NewTuple("T", 0, 1),
			iset.NewTuple("T", 1, 0),
			iset.NewTuple("T", 1, 1),
			iset.NewTuple("U", 0),
			iset.NewTuple("U", 3),
		)
	})

	It("should relate points to smaller points of the same space", func() {
		gt := iset.LexGT(t, t)

		// 6 pairs among the four T points and 1 among the two U points.
		Expect(gt.Len()).To(Equal(7))
		Expect(gt.Contains(iset.NewTuple("T", 1, 0), iset.NewTuple("T", 0, 1))).To(BeTrue())
		Expect(gt.Contains(iset.NewTuple("U", 3), iset.NewTuple("T", 0, 0))).To(BeFalse())
	})

	It("should find the immediate predecessor", func() {
		pred := iset.LexPredecessor(t, t)

		Expect(pred.IsEqual(iset.LexGT(t, t).LexMax())).To(BeTrue())
		Expect(pred.String()).To(Equal(
			"{ T[0, 1] -> T[0, 0]; T[1, 0] -> T[0, 1]; T[1, 1] -> T[1, 0]; U[3] -> U[0] }"))
	})
})
