package stats

import "testing"

func TestValidate_WithinTolerance(t *testing.T) {
	v := Validate(2.0*(1+0.0099), 2.0, 0.01)
	if !v.OK {
		t.Errorf("0.99%% error should pass a 1%% tolerance, got relative error %v", v.RelativeError)
	}
}

func TestValidate_ExceedsTolerance(t *testing.T) {
	v := Validate(2.0*(1+0.0101), 2.0, 0.01)
	if v.OK {
		t.Errorf("1.01%% error should fail a 1%% tolerance, got relative error %v", v.RelativeError)
	}
}

func TestValidate_EqualityPasses(t *testing.T) {
	// 1.25 vs 1.0 gives an exactly representable relative error of 0.25.
	v := Validate(1.25, 1.0, 0.25)
	if v.RelativeError != 0.25 {
		t.Fatalf("expected relative error 0.25, got %v", v.RelativeError)
	}
	if !v.OK {
		t.Error("relative error equal to the tolerance should pass")
	}
}

func TestValidate_JustOverTolerance(t *testing.T) {
	// |2.02-2.0|/2.0 lands a hair above 0.01 in float64, so this fails.
	v := Validate(2.02, 2.0, 0.01)
	if v.OK {
		t.Error("expected tolerance violation for measured=2.02")
	}
	if v.RelativeError < 0.0099 || v.RelativeError > 0.0101 {
		t.Errorf("expected relative error near 0.01, got %v", v.RelativeError)
	}
}

func TestValidate_ExactMatch(t *testing.T) {
	v := Validate(2.0, 2.0, 0.01)
	if !v.OK || v.RelativeError != 0 {
		t.Errorf("exact match should pass with zero error, got %+v", v)
	}
}

func TestValidate_NegativeExpected(t *testing.T) {
	v := Validate(-1.005, -1.0, 0.01)
	if !v.OK {
		t.Errorf("0.5%% error against a negative constant should pass, got %+v", v)
	}
}
