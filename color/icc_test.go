package color

import "testing"

// A minimal-but-valid ICC profile header is nontrivial to hand-construct,
// so these tests exercise Registry's dedup logic against the decode
// failure path rather than a real profile, plus Get/Len bookkeeping.

func TestRegistryRejectsUndecodableProfile(t *testing.T) {
	var r Registry
	_, err := r.Register([]byte("not an icc profile"))
	if err == nil {
		t.Fatal("expected an error decoding garbage bytes as an ICC profile")
	}
}

func TestRegistryLenStartsAtZero(t *testing.T) {
	var r Registry
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryGetOutOfRange(t *testing.T) {
	var r Registry
	if _, ok := r.Get(0); ok {
		t.Error("Get(0) on empty registry should report not-found")
	}
}

func TestRegistryDedupsIdenticalGarbageBeforeDecoding(t *testing.T) {
	// Register the same invalid bytes twice: both calls should fail with
	// the same decode error rather than the second call somehow
	// succeeding by reusing a prior failed registration.
	var r Registry
	data := []byte("same bytes, still not an icc profile")
	_, err1 := r.Register(data)
	_, err2 := r.Register(data)
	if err1 == nil || err2 == nil {
		t.Fatal("both registrations of invalid data should fail")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after only failed registrations", r.Len())
	}
}
