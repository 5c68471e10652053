package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/penalty-estimator/internal/estimate"
	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/pkg/format"
	"github.com/shopspring/decimal"
)

func mustApply(base decimal.Decimal, steps ...penalty.Step) penalty.Result {
	result, err := penalty.Apply(base, steps...)
	if err != nil {
		panic(err)
	}
	return result
}

func sampleResults() []estimate.Estimate {
	traffic := mustApply(decimal.NewFromInt(5000),
		penalty.Always("jurisdiction DL", decimal.RequireFromString("1.2")),
		penalty.When("repeat offense", decimal.RequireFromString("1.5"), true),
	)
	tax := mustApply(decimal.NewFromInt(100000),
		penalty.Always("accrual rate", decimal.RequireFromString("0.12")),
		penalty.When("business entity", decimal.RequireFromString("1.2"), false),
	)
	return []estimate.Estimate{
		{Name: "Delhi speeding", Domain: estimate.DomainTraffic, Result: &traffic},
		{Name: "No bracket", Domain: estimate.DomainTraffic, Reason: "speeding requires a speed bracket: incomplete input"},
		{Name: "Late return", Domain: estimate.DomainTax, Result: &tax},
	}
}

func TestPrettyString(t *testing.T) {
	out := PrettyString(sampleResults(), format.NewFormatter("", ""))

	expected := []string{
		"--- Traffic fine estimates ---",
		"Delhi speeding | ₹9,000 | base 5000 x 1.2 (jurisdiction DL) x 1.5 (repeat offense)",
		"No bracket | not computable (speeding requires a speed bracket: incomplete input)",
		"Motor Vehicles Act",
		"--- Tax penalty estimates ---",
		"Late return | ₹12,000 | base 100000 x 0.12 (accrual rate)",
		"Income Tax Act of India",
	}
	for _, fragment := range expected {
		if !strings.Contains(out, fragment) {
			t.Errorf("PrettyString missing %q in:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "business entity") {
		t.Errorf("skipped steps should not be shown:\n%s", out)
	}
}

func TestPrettyStringSingleDomain(t *testing.T) {
	results := sampleResults()[2:]
	out := PrettyString(results, format.NewFormatter("", "western"))

	if strings.Contains(out, "Traffic fine estimates") {
		t.Errorf("empty domain should be omitted:\n%s", out)
	}
	if !strings.Contains(out, "₹12,000") {
		t.Errorf("expected western grouped amount:\n%s", out)
	}
}

func TestPrettyFormat(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	PrettyFormat(sampleResults(), format.NewFormatter("", ""))

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if buf.String() != PrettyString(sampleResults(), format.NewFormatter("", "")) {
		t.Errorf("PrettyFormat output differs from PrettyString")
	}
}

func TestCsvString(t *testing.T) {
	out := CsvString(sampleResults())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d: %q", len(lines), out)
	}
	if lines[0] != "name,domain,amount,base,reason" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Delhi speeding,traffic,9000,5000," {
		t.Errorf("unexpected traffic row %q", lines[1])
	}
	if lines[2] != "No bracket,traffic,,,speeding requires a speed bracket: incomplete input" {
		t.Errorf("unexpected not computable row %q", lines[2])
	}
	if lines[3] != "Late return,tax,12000,100000," {
		t.Errorf("unexpected tax row %q", lines[3])
	}
}

func TestCsvFormat(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	CsvFormat(sampleResults())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if !strings.HasPrefix(buf.String(), "name,domain,amount,base,reason\n") {
		t.Errorf("CsvFormat missing header, got %q", buf.String())
	}
}
