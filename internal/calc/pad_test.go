// File: pad_test.go
// Title: Scratch Pad Tests
// Description: Tests for reads, sticky operations, arithmetic wraparound,
//              comparisons and error reporting of the scratch pad.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package calc

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) Invoke(message string) any {
	r.messages = append(r.messages, message)
	return nil
}

func newTestPad() (*Pad, *recordingReporter) {
	rep := &recordingReporter{}
	return New(rep, "<info.calc>: "), rep
}

// run evaluates keys in order and collects the results
func run(p *Pad, keys ...string) []any {
	results := make([]any, 0, len(keys))
	for _, k := range keys {
		results = append(results, p.Evaluate(k))
	}
	return results
}

func TestFreshReadCreatesCounter(t *testing.T) {
	pad, rep := newTestPad()

	if got := pad.Evaluate("never"); got != int64(0) {
		t.Fatalf("first read = %v, want 0", got)
	}
	if pad.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pad.Len())
	}

	got := run(pad, "never", "never")
	if diff := cmp.Diff([]any{int64(1), int64(2)}, got); diff != "" {
		t.Errorf("counter reads mismatch (-want +got):\n%s", diff)
	}
	if len(rep.messages) != 0 {
		t.Errorf("unexpected reports: %v", rep.messages)
	}
}

func TestSetThenRead(t *testing.T) {
	pad, _ := newTestPad()

	if got := pad.Evaluate("x_set_5"); got != nil {
		t.Errorf("x_set_5 = %v, want nil", got)
	}
	got := run(pad, "x", "x")
	if diff := cmp.Diff([]any{int64(5), int64(5)}, got); diff != "" {
		t.Errorf("reads mismatch (-want +got):\n%s", diff)
	}
}

func TestStickyAddCounter(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "x_set_0", "x_sadd_3", "x", "x", "x")
	want := []any{nil, nil, int64(3), int64(6), int64(9)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sticky counter mismatch (-want +got):\n%s", diff)
	}
}

func TestStickyDefaultOperandIsUnitCounter(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "i_sadd", "i", "i", "i")
	want := []any{nil, int64(1), int64(2), int64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unit counter mismatch (-want +got):\n%s", diff)
	}
}

func TestStickySubAndMul(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "d_set_10", "d_ssub_2", "d", "d", "m_set_1", "m_smul_2", "m", "m", "m")
	want := []any{nil, nil, int64(8), int64(6), nil, nil, int64(2), int64(4), int64(8)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sticky sub/mul mismatch (-want +got):\n%s", diff)
	}
}

func TestGetBypassesSticky(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "x_set_0", "x_sadd_1", "x_get", "x_get", "x", "x_get")
	want := []any{nil, nil, int64(1), int64(1), int64(1), int64(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("get mismatch (-want +got):\n%s", diff)
	}
}

func TestSetPreservesSticky(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "x_sadd_2", "x_set_100", "x", "x")
	want := []any{nil, nil, int64(100), int64(102)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("set with sticky mismatch (-want +got):\n%s", diff)
	}

	number, _ := pad.Lookup("x")
	if op, operand, ok := number.Sticky(); !ok || op != OpSadd || operand != 2 {
		t.Errorf("Sticky() = %v, %d, %v", op, operand, ok)
	}
}

func TestNonStickyOperationsClearSticky(t *testing.T) {
	for _, key := range []string{"x_add_1", "x_sub_1", "x_mul_1", "x_div_1",
		"x_and_1", "x_or_1", "x_xor_1", "x_sr_1", "x_asr_1", "x_sl_1", "x_not"} {
		t.Run(key, func(t *testing.T) {
			pad, _ := newTestPad()
			run(pad, "x_set_4", "x_sadd_1", key)

			number, _ := pad.Lookup("x")
			if _, _, ok := number.Sticky(); ok {
				t.Fatalf("%s did not clear the sticky operation", key)
			}
			first := pad.Evaluate("x")
			if second := pad.Evaluate("x"); first != second {
				t.Errorf("reads differ after %s: %v, %v", key, first, second)
			}
		})
	}
}

func TestStickyCapturesOperandValue(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "x_set_5", "y_set_20", "y_ssub_x", "x_set_1000", "y", "y")
	want := []any{nil, nil, nil, nil, int64(15), int64(10)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("captured operand mismatch (-want +got):\n%s", diff)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		key   string
		want  int64
	}{
		{"add", 10, "x_add_5", 15},
		{"add default", 10, "x_add", 11},
		{"sub", 10, "x_sub_15", -5},
		{"mul negation suffix", 10, "x_mul_23n", -230},
		{"mul minus", 10, "x_mul_-23", -230},
		{"div truncates", -7, "x_div_2", -3},
		{"and", 0xff, "x_and_0x0f", 0x0f},
		{"or", 0xf0, "x_or_0x0f", 0xff},
		{"xor", 0xff, "x_xor_0x0f", 0xf0},
		{"not", 0, "x_not", -1},
		{"sl", 1, "x_sl_4", 16},
		{"sl default", 1, "x_sl", 2},
		{"sr logical", -1, "x_sr_60", 0xf},
		{"asr arithmetic", -16, "x_asr_2", -4},
		{"shift count modulo 64", 1, "x_sl_65", 2},
		{"negative shift count", 1, "x_sl_1n", math.MinInt64},
		{"and true", 42, "x_and_true", 42},
		{"and false", 42, "x_and_false", 0},
		{"add wraps", math.MaxInt64, "x_add_1", math.MinInt64},
		{"sub wraps", math.MinInt64, "x_sub_1", math.MaxInt64},
		{"mul wraps", math.MaxInt64, "x_mul_2", -2},
		{"div most negative by -1", math.MinInt64, "x_div_1n", math.MinInt64},
		{"hex all ones", 0, "x_add_0xffffffffffffffff", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, rep := newTestPad()
			run(pad, "x_set_"+strconv.FormatInt(tt.start, 10))

			if got := pad.Evaluate(tt.key); got != nil {
				t.Errorf("%s returned %v, want nil", tt.key, got)
			}
			if got := pad.Evaluate("x_get"); got != tt.want {
				t.Errorf("after %s value = %v, want %d", tt.key, got, tt.want)
			}
			if len(rep.messages) != 0 {
				t.Errorf("unexpected reports: %v", rep.messages)
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"x_isGE_5", true},
		{"x_isGE_6", false},
		{"x_isLE_5", true},
		{"x_isLE_4", false},
		{"x_isG_4", true},
		{"x_isG_5", false},
		{"x_isL_6", true},
		{"x_isL_5", false},
		{"x_isE_5", true},
		{"x_isE_0x5", true},
		{"x_isNE_5", false},
		{"x_isNE", true},
		{"x_isG", true},
		{"x_isL", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			pad, _ := newTestPad()
			run(pad, "x_set_5", "x_sadd_0")

			if got := pad.Evaluate(tt.key); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
			}
			number, _ := pad.Lookup("x")
			if number.Value() != 5 {
				t.Errorf("comparison changed value to %d", number.Value())
			}
			if op, operand, ok := number.Sticky(); !ok || op != OpSadd || operand != 0 {
				t.Errorf("comparison changed sticky to %v %d %v", op, operand, ok)
			}
		})
	}
}

func TestComparisonOnFreshNumber(t *testing.T) {
	pad, _ := newTestPad()

	got := run(pad, "z_isG_5", "z", "z")
	want := []any{false, int64(0), int64(0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fresh comparison mismatch (-want +got):\n%s", diff)
	}
}

func TestHexSet(t *testing.T) {
	pad, _ := newTestPad()

	run(pad, "y_set_0xff")
	if got := pad.Evaluate("y"); got != int64(255) {
		t.Errorf("y = %v, want 255", got)
	}
}

func TestReferenceOperand(t *testing.T) {
	pad, rep := newTestPad()

	// the reference is a raw peek: c's sticky operation is not applied
	got := run(pad, "c_set_7", "c_sadd_0", "c_add_3", "c_sadd_1", "v_set_c", "v", "c_get")
	want := []any{nil, nil, nil, nil, nil, int64(11), int64(11)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reference mismatch (-want +got):\n%s", diff)
	}
	if len(rep.messages) != 0 {
		t.Errorf("unexpected reports: %v", rep.messages)
	}
}

func TestBooleanEmulation(t *testing.T) {
	pad, _ := newTestPad()

	run(pad, "x_set_150")
	if pad.Evaluate("x_isL_0") == true {
		run(pad, "xBad_set_true")
	} else {
		run(pad, "xBad_set_false")
	}
	if pad.Evaluate("x_isG_100") == true {
		run(pad, "xTooLarge_set_true")
	} else {
		run(pad, "xTooLarge_set_false")
	}
	run(pad, "xBad_or_xTooLarge")

	if got := pad.Evaluate("xBad_isNE"); got != true {
		t.Errorf("xBad_isNE = %v, want true", got)
	}
}

func TestErrorsAreReportedAndLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantCode mdwerror.Code
		wantText string
	}{
		{"usage not with operand", "w_not_3", mdwerror.CodeUsage, "must not have an operand"},
		{"usage get with operand", "w_get_3", mdwerror.CodeUsage, "must not have an operand"},
		{"unknown operation", "w_pow_2", mdwerror.CodeParse, "unknown operation"},
		{"unresolved reference", "w_add_nobody", mdwerror.CodeReference, "no number nobody"},
		{"literal out of range", "w_set_99999999999999999999", mdwerror.CodeParse, "does not fit into 64 bit"},
		{"division by zero", "w_div_0", mdwerror.CodeDivisionByZero, "division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, rep := newTestPad()
			run(pad, "w_set_9", "w_sadd_2")

			if _, err := pad.Exec(tt.key); !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("Exec(%q) error = %v, want code %v", tt.key, err, tt.wantCode)
			}

			if got := pad.Evaluate(tt.key); got != nil {
				t.Errorf("Evaluate(%q) = %v, want nil", tt.key, got)
			}
			if len(rep.messages) != 1 {
				t.Fatalf("reports = %v, want exactly one", rep.messages)
			}
			msg := rep.messages[0]
			if !strings.HasPrefix(msg, "<info.calc>: ") || !strings.Contains(msg, tt.wantText) {
				t.Errorf("report = %q", msg)
			}

			number, _ := pad.Lookup("w")
			if number.Value() != 11 {
				t.Errorf("value changed to %d", number.Value())
			}
			if op, operand, ok := number.Sticky(); !ok || op != OpSadd || operand != 2 {
				t.Errorf("sticky changed to %v %d %v", op, operand, ok)
			}
			if pad.Len() != 1 {
				t.Errorf("Len() = %d, failing key created a number", pad.Len())
			}
		})
	}
}

func TestFailedOperationDoesNotCreateNumber(t *testing.T) {
	pad, rep := newTestPad()

	run(pad, "fresh_add_missing", "other_div_0", "third_not_1")
	if pad.Len() != 0 {
		t.Errorf("Len() = %d, names %v", pad.Len(), pad.Names())
	}
	if len(rep.messages) != 3 {
		t.Errorf("reports = %v", rep.messages)
	}
}

func TestNilReporter(t *testing.T) {
	pad := New(nil, "")
	if got := pad.Evaluate("x_bogus"); got != nil {
		t.Errorf("Evaluate() = %v, want nil", got)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64, math.MinInt64 + 1, 1 << 40}

	for _, v := range values {
		t.Run(strconv.FormatInt(v, 10), func(t *testing.T) {
			pad, rep := newTestPad()
			// the number already carries wrapped state and a sticky operation
			run(pad, "a_set_"+strconv.FormatInt(math.MaxInt64, 10), "a_sadd_7", "a", "a")

			run(pad, "a_set_"+strconv.FormatInt(v, 10))
			if got := pad.Evaluate("a"); got != v {
				t.Errorf("a = %v, want %d", got, v)
			}

			// the template writes negative values either with dash or suffix
			if v > 0 {
				run(pad, "b_set_"+strconv.FormatInt(v, 10)+"n")
				if got := pad.Evaluate("b_get"); got != -v {
					t.Errorf("b = %v, want %d", got, -v)
				}
			}
			if len(rep.messages) != 0 {
				t.Errorf("unexpected reports: %v", rep.messages)
			}
		})
	}
}

func TestNames(t *testing.T) {
	pad, _ := newTestPad()
	run(pad, "b", "a_set_1", "c_isE")

	if diff := cmp.Diff([]string{"a", "b", "c"}, pad.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := pad.Peek("b"); !ok || v != 1 {
		t.Errorf("Peek(b) = %d, %v", v, ok)
	}
	if _, ok := pad.Peek("zz"); ok {
		t.Error("Peek(zz) should not find a number")
	}
}
