package errutil

import "testing"

func TestReason(t *testing.T) {
	err := Reject(ErrIllegalDeclaration, "total cannot equal 8")
	if r := Reason(err); r != "total cannot equal 8" {
		t.Fatalf("reason, expect=%q, got=%q", "total cannot equal 8", r)
	}
	if r := Reason(ErrOutOfTurn); r != "out of turn" {
		t.Fatalf("bare sentinel reason, got=%q", r)
	}
	if Reason(nil) != "" {
		t.Fatal("nil error should have empty reason")
	}
}

func TestCode(t *testing.T) {
	err := Rejectf(ErrIllegalPlay, "expect %d pieces, got %d", 2, 3)
	if Code(err) != ltIllegalPlay {
		t.Fatalf("code, expect=%d, got=%d", ltIllegalPlay, Code(err))
	}
	if !Is(err, ErrIllegalPlay) {
		t.Fatal("wrapped error should match its sentinel")
	}
	if !Recoverable(err) {
		t.Fatal("illegal play should be recoverable")
	}
	if Recoverable(Reject(ErrInternalInvariant, "hand underflow")) {
		t.Fatal("internal invariant should not be recoverable")
	}
}
