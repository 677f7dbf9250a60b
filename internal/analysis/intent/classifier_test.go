package intent

import "testing"

func TestClassifyAdmission(t *testing.T) {
	if got := Classify("How do I get ADMISSION to the university?"); got != Admission {
		t.Fatalf("expected admission topic, got %s", got)
	}
}

func TestClassifyFee(t *testing.T) {
	if got := Classify("what are the fees for B.Tech"); got != Fee {
		t.Fatalf("expected fee topic, got %s", got)
	}
}

func TestClassifyAdmissionWinsOverFee(t *testing.T) {
	// Deterministic priority when multiple topics are mentioned.
	if got := Classify("admission fee payment"); got != Admission {
		t.Fatalf("expected admission topic, got %s", got)
	}
}

func TestClassifyGeneralFallthrough(t *testing.T) {
	if got := Classify("hello there"); got != General {
		t.Fatalf("expected general topic, got %s", got)
	}
}

func TestClassifyBlank(t *testing.T) {
	if got := Classify("   "); got != General {
		t.Fatalf("expected general topic for blank input, got %s", got)
	}
}
