package corpus

import (
	"bufio"
	"bytes"
	"math/rand/v2"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"
)

var recordRe = regexp.MustCompile(`^([A-Za-z.' ]+), ([A-Za-z.' ]+), ([A-Za-z ]+) \$(\d+\.\d{2}) ([A-Za-z ]+)$`)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPayrollLineFormat(t *testing.T) {
	t.Parallel()

	gen := NewPayrollGenerator()
	gen.Init(testRand(1))

	var buf bytes.Buffer
	for i := 0; i < 1000; i++ {
		if err := gen.WriteLine(&buf); err != nil {
			t.Fatalf("WriteLine: %v", err)
		}
	}

	scanner := bufio.NewScanner(&buf)
	count := 0
	for scanner.Scan() {
		count++
		line := scanner.Text()
		m := recordRe.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d does not match record format: %q", count, line)
		}

		if !slices.Contains(LastNames, m[1]) {
			t.Errorf("last name %q not in reference list", m[1])
		}
		if !slices.Contains(FirstNames, m[2]) {
			t.Errorf("first name %q not in reference list", m[2])
		}
		if !slices.Contains(Agencies, m[3]) {
			t.Errorf("agency %q not in reference list", m[3])
		}
		if !slices.Contains(Cities, m[5]) {
			t.Errorf("city %q not in reference list", m[5])
		}

		salary, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			t.Fatalf("parsing salary %q: %v", m[4], err)
		}
		if salary < 800.00 || salary > 1200.00 {
			t.Errorf("salary %.2f outside [800.00, 1200.00]", salary)
		}
	}
	if count != 1000 {
		t.Errorf("expected 1000 lines, got %d", count)
	}
}

func TestPayrollSalaryBoundsAfterRounding(t *testing.T) {
	t.Parallel()

	// Endpoint values must survive %.2f rendering inside the range and
	// with exactly two decimal digits.
	gen := &PayrollGenerator{
		FirstNames: []string{"A"},
		LastNames:  []string{"B"},
		Agencies:   []string{"C"},
		Cities:     []string{"D"},
		SalaryMin:  800.00,
		SalaryMax:  800.00, // degenerate range pins the draw to the endpoint
	}
	gen.Init(testRand(2))

	var buf bytes.Buffer
	if err := gen.WriteLine(&buf); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	got := strings.TrimSuffix(buf.String(), "\n")
	want := "B, A, C $800.00 D"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPayrollDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	render := func() string {
		gen := NewPayrollGenerator()
		gen.Init(testRand(42))
		var buf bytes.Buffer
		for i := 0; i < 50; i++ {
			if err := gen.WriteLine(&buf); err != nil {
				t.Fatalf("WriteLine: %v", err)
			}
		}
		return buf.String()
	}

	if render() != render() {
		t.Error("same seed produced different output")
	}
}

func TestPayrollSubstitutedLists(t *testing.T) {
	t.Parallel()

	gen := &PayrollGenerator{
		FirstNames: []string{"Ada"},
		LastNames:  []string{"Lovelace"},
		Agencies:   []string{"Analytical Engine Office"},
		Cities:     []string{"London"},
		SalaryMin:  1000,
		SalaryMax:  1000,
	}
	gen.Init(testRand(3))

	var buf bytes.Buffer
	if err := gen.WriteLine(&buf); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	want := "Lovelace, Ada, Analytical Engine Office $1000.00 London\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	gen, err := Get("payroll")
	if err != nil {
		t.Fatalf("Get(payroll): %v", err)
	}
	if gen.DefaultCount() != 100 {
		t.Errorf("DefaultCount = %d, want 100", gen.DefaultCount())
	}

	if _, err := Get("nonexistent"); err == nil {
		t.Error("Get(nonexistent) should fail")
	}

	if !slices.Contains(List(), "payroll") {
		t.Error("List() missing payroll")
	}
}
