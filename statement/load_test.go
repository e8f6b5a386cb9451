package statement_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/statement"
)

var _ = Describe("Load", func() {
	It("should load a statement file", func() {
		st, err := statement.Load("testdata/gemm.yaml")

		Expect(err).NotTo(HaveOccurred())
		Expect(st.Name()).To(Equal("gemm"))
		Expect(st.Domain().Len()).To(Equal(8))
		Expect(st.Access("Y", statement.Write).Len()).To(Equal(8))

		inputs, outputs := st.Tensors()
		Expect(inputs).To(Equal([]string{"A", "B", "Y"}))
		Expect(outputs).To(Equal([]string{"Y"}))
	})

	It("should override parameters", func() {
		st, err := statement.Load("testdata/gemm.yaml", statement.OverrideParam("N", 3))

		Expect(err).NotTo(HaveOccurred())
		Expect(st.Domain().Len()).To(Equal(27))
	})

	It("should report a missing file", func() {
		_, err := statement.Load("testdata/missing.yaml")

		Expect(err).To(HaveOccurred())
	})

	It("should report a bad access kind", func() {
		_, err := statement.Parse([]byte(`
domain: "{ S[i] : 0 <= i < 4 }"
accesses:
  - {tensor: A, kind: modify, map: "S[i] -> A[i]"}
`))

		Expect(err).To(MatchError(statement.ErrInvalidAccessKind))
	})

	It("should keep unresolved parameters symbolic", func() {
		st, err := statement.Parse([]byte(`
params: {N: null}
domain: "{ S[i] : 0 <= i < N }"
accesses:
  - {tensor: A, kind: read, map: "S[i] -> A[i]"}
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(st.Domain().IsSymbolic()).To(BeTrue())
	})
})
