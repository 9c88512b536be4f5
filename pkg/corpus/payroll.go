package corpus

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// PayrollGenerator generates OCR-like payroll records in format:
// "{last}, {first}, {agency} ${salary} {city}"
type PayrollGenerator struct {
	FirstNames []string
	LastNames  []string
	Agencies   []string
	Cities     []string

	// Salary is drawn uniformly from [SalaryMin, SalaryMax] and rendered
	// with exactly two decimal digits.
	SalaryMin float64
	SalaryMax float64

	rand *rand.Rand
}

// NewPayrollGenerator returns a generator populated with the default
// reference lists and the standard salary range.
func NewPayrollGenerator() *PayrollGenerator {
	return &PayrollGenerator{
		FirstNames: FirstNames,
		LastNames:  LastNames,
		Agencies:   Agencies,
		Cities:     Cities,
		SalaryMin:  800.00,
		SalaryMax:  1200.00,
	}
}

func (g *PayrollGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *PayrollGenerator) WriteLine(w io.Writer) error {
	last := g.LastNames[g.rand.IntN(len(g.LastNames))]
	first := g.FirstNames[g.rand.IntN(len(g.FirstNames))]
	agency := g.Agencies[g.rand.IntN(len(g.Agencies))]
	salary := g.SalaryMin + g.rand.Float64()*(g.SalaryMax-g.SalaryMin)
	city := g.Cities[g.rand.IntN(len(g.Cities))]

	_, err := fmt.Fprintf(w, "%s, %s, %s $%.2f %s\n", last, first, agency, salary, city)
	return err
}

func (g *PayrollGenerator) Description() string {
	return "OCR-like payroll records: {last}, {first}, {agency} ${salary} {city}"
}

func (g *PayrollGenerator) DefaultCount() int64 {
	return 100 // lines per page
}
