package testing_assert

import "testing"

func Assert(t *testing.T, condition bool, msg string) {
	if !condition {
		t.Fatal(msg)
	}
}

func SimpleAssert(t *testing.T, condition bool) {
	if !condition {
		t.Fatal("assertion failed")
	}
}

func Equals(t *testing.T, expected interface{}, actual interface{}) {
	if expected != actual {
		t.Fatalf("expected %v but got %v", expected, actual)
	}
}

func Ok(t *testing.T, err error) {
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
