package speciesdb_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gasthermo/internal/speciesdb"
	"github.com/san-kum/gasthermo/internal/thermo"
)

func TestSpeciesDB(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SpeciesDB Suite")
}

var _ = Describe("Default registry", func() {
	var reg *thermo.Registry

	BeforeEach(func() {
		reg = speciesdb.Default()
	})

	It("contains every air species", func() {
		for name := range thermo.AirMoleFractions {
			_, err := reg.Lookup(name)
			Expect(err).NotTo(HaveOccurred(), "missing %s", name)
		}
	})

	It("keeps file order", func() {
		names := reg.Names()
		Expect(names[0]).To(Equal("N2"))
		Expect(names[1]).To(Equal("O2"))
		Expect(names[2]).To(Equal("Ar"))
	})

	It("reproduces tabulated N2 properties", func() {
		i, err := reg.Lookup("N2")
		Expect(err).NotTo(HaveOccurred())
		sp := reg.At(i)
		Expect(sp.MW).To(BeNumerically("~", 28.0134, 1e-4))

		tt := thermo.NewTempBasis(298.15)
		Expect(thermo.Cp(&tt, sp.Coeffs(298.15))).To(BeNumerically("~", 29.124, 0.05))
		// reference-state enthalpy is the (zero) formation enthalpy
		Expect(thermo.Enthalpy(&tt, sp.Coeffs(298.15))).To(BeNumerically("~", 0, 5))
		Expect(thermo.Phi(&tt, sp.Coeffs(298.15))).To(BeNumerically("~", 191.6, 0.2))
	})

	It("rejects unknown names", func() {
		_, err := reg.Lookup("unobtainium")
		Expect(err).To(MatchError(thermo.ErrUnknownSpecies))
	})
})

var _ = Describe("Parse", func() {
	It("rejects records with short coefficient sets", func() {
		_, err := speciesdb.Parse([]byte(`
species:
  - name: X
    mw: 10.0
    tmin: 200.0
    tmax: 6000.0
    low: [1.0, 2.0]
    high: [1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0]
`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects ranges that do not bracket the switch temperature", func() {
		_, err := speciesdb.Parse([]byte(`
species:
  - name: X
    mw: 10.0
    tmin: 1200.0
    tmax: 6000.0
    low: [1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0]
    high: [1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0]
`))
		Expect(err).To(MatchError(thermo.ErrCoefficientRange))
	})

	It("rejects empty data", func() {
		_, err := speciesdb.Parse([]byte("species: []"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Load", func() {
	It("reads a data file from disk", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "species.yaml")
		data := []byte(`
species:
  - name: Ar
    mw: 39.948
    hf: 0.0
    tmin: 200.0
    tmax: 6000.0
    low: [0.0, 0.0, 2.5, 0.0, 0.0, 0.0, 0.0, -745.375, 4.37967491]
    high: [0.0, 0.0, 2.5, 0.0, 0.0, 0.0, 0.0, -745.375, 4.37967491]
`)
		Expect(os.WriteFile(path, data, 0o644)).To(Succeed())

		reg, err := speciesdb.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(reg.Len()).To(Equal(1))

		tt := thermo.NewTempBasis(500)
		i, _ := reg.Lookup("Ar")
		Expect(thermo.Cp(&tt, reg.At(i).Coeffs(500))).To(BeNumerically("~", 20.786, 0.01))
	})

	It("fails on a missing file", func() {
		_, err := speciesdb.Load("no/such/file.yaml")
		Expect(err).To(HaveOccurred())
	})
})
