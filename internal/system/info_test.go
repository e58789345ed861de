package system

import "testing"

func TestParallelismAtLeastOne(t *testing.T) {
	if n := Parallelism(); n < 1 {
		t.Fatalf("Parallelism() = %d, want >= 1", n)
	}
}
