package experiment

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tenet/dataflow"
	"github.com/sarchlab/tenet/mapping"
	"github.com/sarchlab/tenet/statement"
)

var _ = Describe("Experiment", func() {
	It("should parse the three file names", func() {
		e, err := Parse("gemm", []byte("mapping/a.m  pe_array/b.p\nstatement/c.s\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(Equal(Experiment{
			Name:      "gemm",
			Mapping:   "mapping/a.m",
			PEArray:   "pe_array/b.p",
			Statement: "statement/c.s",
		}))
	})

	It("should reject a short description", func() {
		_, err := Parse("short", []byte("mapping/a.m pe_array/b.p"))
		Expect(err).To(MatchError(ErrMalformedExperiment))
	})

	It("should load a directory in name order", func() {
		exps, err := LoadDir("testdata/experiment", "testdata")

		Expect(err).NotTo(HaveOccurred())
		Expect(exps).To(HaveLen(2))
		Expect(exps[0].Name).To(Equal("a_broadcast.e"))
		Expect(exps[0].Mapping).To(Equal(filepath.Join("testdata", "mapping", "broadcast.m")))
		Expect(exps[1].Name).To(Equal("b_missing.e"))
	})

	It("should fail on a missing directory", func() {
		_, err := LoadDir("testdata/nothing", "testdata")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Runner", func() {
	var (
		runner *Runner
		exps   []Experiment
	)

	BeforeEach(func() {
		var err error
		exps, err = LoadDir("testdata/experiment", "testdata")
		Expect(err).NotTo(HaveOccurred())

		runner = NewRunner(dataflow.NewBuilder())
	})

	It("should analyze a broadcast", func() {
		res, err := runner.Run(exps[0])

		Expect(err).NotTo(HaveOccurred())
		Expect(res.DomainSize).To(Equal(4.0))
		Expect(res.Tensors).To(HaveLen(2))

		a := res.Tensors[0]
		Expect(a.Tensor).To(Equal("A"))
		Expect(a.TotalVolume).To(Equal(4.0))
		Expect(a.UniqueVolume).To(BeZero())
		Expect(math.IsInf(a.ReuseFactor, 1)).To(BeTrue())
		Expect(a.TemporalReuse).To(Equal(2.0))
		Expect(a.SpatialReuse).To(Equal(4.0))
		Expect(a.SpatialReuseAt0).To(Equal(4.0))
		Expect(a.SpatialReuseAt1).To(Equal(2.0))

		y := res.Tensors[1]
		Expect(y.Tensor).To(Equal("Y"))
		Expect(y.Kind).To(Equal(statement.Write))
		Expect(y.UniqueVolume).To(Equal(4.0))
		Expect(y.ReuseFactor).To(Equal(1.0))

		Expect(res.IngressDelay).To(BeZero())
		Expect(res.EgressDelay).To(Equal(4.0))
		Expect(res.ComputationDelay).To(Equal(2.0))
		Expect(res.ActivePENum).To(Equal(2.0))
		Expect(res.AveragePENum).To(Equal(2.0))
		Expect(res.Energy).To(Equal(68.0))
	})

	It("should override parameters", func() {
		res, err := runner.WithParam("N", 8).Run(exps[0])

		Expect(err).NotTo(HaveOccurred())
		Expect(res.DomainSize).To(Equal(8.0))
		Expect(res.ComputationDelay).To(Equal(4.0))
	})

	It("should override parameters of the PE array", func() {
		df, err := runner.WithParam("P", 4).Build(exps[0])

		Expect(err).NotTo(HaveOccurred())
		Expect(df.PEArray().Domain().Len()).To(Equal(4))
		Expect(df.PEArray().Interconnect().Len()).To(Equal(6))
	})

	It("should lint when asked", func() {
		res, err := runner.WithLint(true).Run(exps[0])

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Issues).To(BeEmpty())
	})

	It("should keep going past a failing experiment", func() {
		summary, err := runner.RunAll(exps)

		Expect(err).To(MatchError(mapping.ErrMissingFunction))
		Expect(summary.Results).To(HaveLen(1))
		Expect(summary.Results[0].Name).To(Equal("a_broadcast.e"))
	})
})

var _ = Describe("Summary", func() {
	var summary *Summary

	BeforeEach(func() {
		exps, err := LoadDir("testdata/experiment", "testdata")
		Expect(err).NotTo(HaveOccurred())

		res, err := NewRunner(dataflow.NewBuilder()).Run(exps[0])
		Expect(err).NotTo(HaveOccurred())

		summary = &Summary{Results: []*Result{res}}
	})

	It("should render tables", func() {
		out := summary.Render()

		Expect(out).To(ContainSubstring("Experiment a_broadcast.e"))
		Expect(out).To(ContainSubstring("Average Active PEs"))
		Expect(out).To(ContainSubstring("+Inf"))
	})

	It("should write a text report", func() {
		var buf bytes.Buffer
		summary.WriteReport(&buf)

		out := buf.String()
		Expect(out).To(ContainSubstring("Input Tensor: A"))
		Expect(out).To(ContainSubstring("Output Tensor: Y"))
		Expect(out).To(ContainSubstring("Delay: In: 0; Out: 4; Com: 2"))
		Expect(out).To(ContainSubstring("Energy: 68"))
	})

	It("should save the report to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "report.txt")

		Expect(summary.SaveReportToFile(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("Active PE Num: 2; Average: 2.00"))
	})
})
