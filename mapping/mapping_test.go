package mapping_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/mapping"
)

func iter(i int) iset.Tuple {
	return iset.NewTuple("S", i)
}

var _ = Describe("Mapping", func() {
	var domain iset.Set

	BeforeEach(func() {
		domain = iset.NewSet(iter(0), iter(1), iter(2), iter(3))
	})

	It("should instantiate over a domain", func() {
		m, err := mapping.Builder{}.
			WithDomain(domain).
			WithSpace("S[i] -> PE[i % 2]").
			WithTime("S[i] -> T[i / 2]").
			Build("m")

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name()).To(Equal("m"))
		Expect(m.SpaceMap().Len()).To(Equal(4))
		Expect(m.TimeMap().Range().Len()).To(Equal(2))
	})

	It("should pair space and time", func() {
		m, _ := mapping.Builder{}.
			WithDomain(domain).
			WithSpace("S[i] -> PE[i % 2]").
			WithTime("S[i] -> T[i / 2]").
			Build("m")

		st := m.SpaceTimeMap()

		Expect(st.Len()).To(Equal(4))
		Expect(st.Contains(iter(3),
			iset.Wrap(iset.NewTuple("PE", 1), iset.NewTuple("T", 1)))).To(BeTrue())
	})

	It("should prefer its own loop nest", func() {
		m, err := mapping.Builder{}.
			WithParam("N", 3).
			WithLoopNest("{ S[i] : 0 <= i < N }").
			WithDomain(domain).
			WithSpace("S[i] -> PE[0]").
			WithTime("S[i] -> T[i]").
			Build("m")

		Expect(err).NotTo(HaveOccurred())
		Expect(m.TimeMap().Len()).To(Equal(3))
	})

	It("should build from relations", func() {
		space := iset.NewMap(iset.Pair{From: iter(0), To: iset.NewTuple("PE", 0)})
		time := iset.NewMap(iset.Pair{From: iter(0), To: iset.NewTuple("T", 0)})

		m := mapping.New("m", space, time)
		c := m.Clone()

		Expect(c).NotTo(BeIdenticalTo(m))
		Expect(c.SpaceTimeMap().IsEqual(m.SpaceTimeMap())).To(BeTrue())
	})

	It("should require both functions", func() {
		_, err := mapping.Builder{}.WithDomain(domain).WithSpace("S[i] -> PE[0]").Build("m")

		Expect(err).To(MatchError(mapping.ErrMissingFunction))
	})

	It("should require a domain", func() {
		_, err := mapping.Builder{}.
			WithSpace("S[i] -> PE[0]").
			WithTime("S[i] -> T[i]").
			Build("m")

		Expect(err).To(MatchError(mapping.ErrNoDomain))
	})
})

var _ = Describe("Load", func() {
	It("should load a mapping with its own domain", func() {
		m, err := mapping.Load("testdata/os.yaml")

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name()).To(Equal("output_stationary"))
		Expect(m.SpaceMap().Range().Len()).To(Equal(4))
		Expect(m.TimeMap().Range().Len()).To(Equal(4))
	})

	It("should load a mapping over a given domain", func() {
		m, err := mapping.Load("testdata/nodomain.yaml", mapping.WithDomain(
			iset.NewSet(iter(0), iter(1), iter(2), iter(3), iter(4), iter(5))))

		Expect(err).NotTo(HaveOccurred())
		Expect(m.TimeMap().Range().Len()).To(Equal(3))
	})

	It("should override parameters", func() {
		m, err := mapping.Load("testdata/os.yaml", mapping.OverrideParam("N", 3))

		Expect(err).NotTo(HaveOccurred())
		Expect(m.SpaceMap().Len()).To(Equal(27))
	})

	It("should fail without a domain", func() {
		_, err := mapping.Load("testdata/nodomain.yaml")

		Expect(err).To(MatchError(mapping.ErrNoDomain))
	})
})
