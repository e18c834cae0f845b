package recording_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/accelplot/internal/recording"
)

const preamble = "MSR Logger Export\nDevice;MSR145\nSerial;457988\nStart;2025-03-14 16:32:16\n"

func export(rows ...string) string {
	return preamble + "TIME;ACC x [g];ACC y [g];ACC z [g]\n" + strings.Join(rows, "\n") + "\n"
}

func sampleRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("2025-03-14 16:32:16.%06d;%.3f;%.3f;%.3f", i*10000, 0.01*float64(i), -0.98, 0.03)
	}
	return rows
}

func writeFile(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "export.csv")
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("keeps the four sequences aligned", func() {
		rec, err := recording.Load(writeFile(export(sampleRows(5)...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Len()).To(Equal(5))
		Expect(rec.X).To(HaveLen(5))
		Expect(rec.Y).To(HaveLen(5))
		Expect(rec.Z).To(HaveLen(5))
		Expect(rec.Columns).To(Equal([]string{"TIME", "ACC x [g]", "ACC y [g]", "ACC z [g]"}))
	})

	It("drops rows with a non-numeric Y from every sequence", func() {
		rows := sampleRows(10)
		rows[3] = "2025-03-14 16:32:16.030000;0.030;n/a;0.030"
		rows[7] = "2025-03-14 16:32:16.070000;0.070;;0.030"

		rec, err := recording.Load(writeFile(export(rows...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Len()).To(Equal(8))
		Expect(rec.X).To(HaveLen(8))
		Expect(rec.Y).To(HaveLen(8))
		Expect(rec.Z).To(HaveLen(8))
		Expect(rec.Dropped).To(Equal(2))
		Expect(rec.X).NotTo(ContainElement(BeNumerically("~", 0.03, 1e-9)))
	})

	It("starts relative time at zero and keeps it non-decreasing", func() {
		rec, err := recording.Load(writeFile(export(sampleRows(20)...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Time[0]).To(BeZero())
		for i := 1; i < rec.Len(); i++ {
			Expect(rec.Time[i]).To(BeNumerically(">=", rec.Time[i-1]))
		}
		Expect(rec.Time[1]).To(BeNumerically("~", 0.01, 1e-9))
	})

	It("rebases time when the first row is dropped", func() {
		rows := sampleRows(4)
		rows[0] = "2025-03-14 16:32:16.000000;bad;0;0"
		rec, err := recording.Load(writeFile(export(rows...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Len()).To(Equal(3))
		Expect(rec.Time[0]).To(BeZero())
	})

	It("fails with a parse error when the header block is short", func() {
		path := writeFile("MSR Logger Export\nDevice;MSR145\n")
		rec, err := recording.Load(path)
		Expect(rec).To(BeNil())
		Expect(errors.Is(err, recording.ErrParse)).To(BeTrue())

		var pe *recording.ParseError
		Expect(errors.As(err, &pe)).To(BeTrue())
	})

	It("fails with a parse error when columns are missing", func() {
		rec, err := recording.Load(writeFile(preamble + "TIME;ACC x [g]\n2025-03-14 16:32:16.0;1\n"))
		Expect(rec).To(BeNil())
		Expect(err).To(MatchError(recording.ErrParse))
	})

	It("fails with a file error when the file is missing", func() {
		rec, err := recording.Load(filepath.Join(GinkgoT().TempDir(), "missing.csv"))
		Expect(rec).To(BeNil())
		Expect(errors.Is(err, recording.ErrFile)).To(BeTrue())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		Expect(err.Error()).NotTo(ContainSubstring("missing.csv"))
	})

	It("loses only the row with a stray quote", func() {
		rows := sampleRows(5)
		rows[1] = `2025-03-14 16:32:16.010000;"4;5;6`
		rec, err := recording.Load(writeFile(export(rows...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Len()).To(Equal(4))
		Expect(rec.Dropped).To(Equal(1))
		Expect(rec.X[1]).To(BeNumerically("~", 0.02, 1e-9))
	})

	It("logs dropped rows to the given logger", func() {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		rows := sampleRows(3)
		rows[1] = "2025-03-14 16:32:16.010000;x;0;0"

		rec, err := recording.Load(writeFile(export(rows...)), recording.WithLogger(log))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Dropped).To(Equal(1))
		Expect(buf.String()).To(ContainSubstring("dropping row"))
		Expect(buf.String()).To(ContainSubstring("line=7"))
	})

	It("selects axes by name", func() {
		rec, err := recording.Load(writeFile(export(sampleRows(3)...)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Axis("x")).To(Equal(rec.X))
		Expect(rec.Axis("Y")).To(Equal(rec.Y))
		Expect(rec.Axis("z")).To(Equal(rec.Z))
		Expect(rec.Axis("w")).To(BeNil())
	})

	It("is deterministic across loads", func() {
		path := writeFile(export(sampleRows(50)...))
		a, err := recording.Load(path)
		Expect(err).NotTo(HaveOccurred())
		b, err := recording.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(a))
	})

	Context("with an unparseable timestamp", func() {
		var path string

		BeforeEach(func() {
			rows := sampleRows(4)
			rows[2] = "not a time;0.1;0.2;0.3"
			path = writeFile(export(rows...))
		})

		It("drops the row by default", func() {
			rec, err := recording.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Len()).To(Equal(3))
			Expect(rec.Dropped).To(Equal(1))
		})

		It("keeps a corrupt first row without a header line", func() {
			in := preamble + "2025-03-14 16:32:XX.00;1;2;3\n"
			rec, err := recording.Load(writeFile(in), recording.WithKeepInvalidTime(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Columns).To(BeNil())
			Expect(rec.Len()).To(Equal(1))
			Expect(rec.Dropped).To(BeZero())
			Expect(math.IsNaN(rec.Time[0])).To(BeTrue())
			Expect(rec.Z[0]).To(Equal(3.0))
		})

		It("keeps it with a NaN time when asked", func() {
			rec, err := recording.Load(path, recording.WithKeepInvalidTime(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Len()).To(Equal(4))
			Expect(math.IsNaN(rec.Time[2])).To(BeTrue())
			Expect(rec.Y[2]).To(Equal(0.2))
		})
	})
})
