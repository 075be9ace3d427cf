package testkit

import "testing"

var (
	clockSeam = func() string { return "real" }
	ttlSeam   = 120
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clockSeam, func() string { return "fake" })
		Swap(t, &ttlSeam, 1)
		if clockSeam() != "fake" || ttlSeam != 1 {
			t.Fatalf("swap did not take effect")
		}
	})
	if clockSeam() != "real" || ttlSeam != 120 {
		t.Fatalf("swap not restored: %q %d", clockSeam(), ttlSeam)
	}
}

func TestSwap_Nested(t *testing.T) {
	t.Run("outer", func(t *testing.T) {
		Swap(t, &ttlSeam, 5)
		t.Run("inner", func(t *testing.T) {
			Swap(t, &ttlSeam, 6)
			if ttlSeam != 6 {
				t.Fatalf("inner = %d", ttlSeam)
			}
		})
		if ttlSeam != 5 {
			t.Fatalf("inner cleanup should restore outer value, got %d", ttlSeam)
		}
	})
	if ttlSeam != 120 {
		t.Fatalf("outer cleanup missing, got %d", ttlSeam)
	}
}
