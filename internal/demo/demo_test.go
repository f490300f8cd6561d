package demo_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/demo"
)

const transcript = `Length:    4, capacity:    4
1 2 4 8
Removing [2]
Length:    3, capacity:    4
1 2 8
Shrinking to fit
Length:    3, capacity:    3
Changing [2] to 3 and appending {4, 5, 6}
Length:    6, capacity:    9
1 2 3 4 5 6
Shrinking to fit
Length:    6, capacity:    6
Stealing the vector's data
Stolen data:
1 2 3 4 5 6
Done.
`

var _ = Describe("Run", func() {
	var out bytes.Buffer

	BeforeEach(func() {
		out.Reset()
	})

	Context("with the heap allocator", func() {
		It("prints the full transcript", func() {
			_, err := demo.Run(&out, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(transcript))
		})

		It("reports removal, stolen data and an emptied vector", func() {
			rep, err := demo.Run(&out, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Removed).To(Equal(int32(4)))
			Expect(rep.Stolen).To(Equal([]int32{1, 2, 3, 4, 5, 6}))
			Expect(rep.Caps).To(Equal([]int{4, 4, 3, 9, 6}))
			Expect(rep.Len).To(BeZero())
			Expect(rep.Cap).To(BeZero())
		})
	})

	Context("with the manual allocator", func() {
		var alloc *vector.ManualAllocator

		BeforeEach(func() {
			alloc = vector.NewManualAllocator()
		})

		AfterEach(func() {
			Expect(alloc.Close()).To(Succeed())
		})

		It("produces the same transcript", func() {
			_, err := demo.Run(&out, nil, vector.WithAllocator(alloc))
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(transcript))
		})
	})

	Context("with a growth factor of 2", func() {
		It("reaches exactly six slots before the final shrink", func() {
			rep, err := demo.Run(&out, nil, vector.WithGrowthFactor(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Caps).To(Equal([]int{4, 4, 3, 6, 6}))
			Expect(rep.Stolen).To(Equal([]int32{1, 2, 3, 4, 5, 6}))
		})
	})

	It("decorates section titles only", func() {
		_, err := demo.Run(&out, func(s string) string { return "## " + s })
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(ContainElement("## Removing [2]"))
		Expect(lines).To(ContainElement("## Done."))
		Expect(lines[0]).To(HavePrefix("Length:"))
	})
})

var _ = Describe("GrowthSeries", func() {
	It("follows the golden ratio schedule", func() {
		caps, err := demo.GrowthSeries(13)
		Expect(err).NotTo(HaveOccurred())
		Expect(caps).To(Equal([]float64{1, 2, 4, 4, 7, 7, 7, 12, 12, 12, 12, 12, 20}))
	})

	It("never decreases", func() {
		caps, err := demo.GrowthSeries(500, vector.WithGrowthFactor(1.1))
		Expect(err).NotTo(HaveOccurred())
		Expect(caps).To(HaveLen(500))
		for i := 1; i < len(caps); i++ {
			Expect(caps[i]).To(BeNumerically(">=", caps[i-1]))
			Expect(caps[i]).To(BeNumerically(">=", float64(i+1)))
		}
	})

	It("returns an empty series for no appends", func() {
		caps, err := demo.GrowthSeries(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(caps).To(BeEmpty())
	})
})

var _ = Describe("Format", func() {
	It("renders an empty vector as an empty string", func() {
		v := vector.New(demo.ElemSize)
		defer v.Release()
		Expect(demo.Format(v)).To(BeEmpty())
	})
})
