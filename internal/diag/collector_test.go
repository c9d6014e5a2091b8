package diag

import (
	"sync"
	"testing"
)

func TestCollectorRecordDrain(t *testing.T) {
	c := NewCollector()
	c.Record(Diagnostic{Code: "one"})
	c.Record(Diagnostic{Code: "two"})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got := c.Drain()
	if len(got) != 2 || got[0].Code != "one" || got[1].Code != "two" {
		t.Fatalf("Drain() = %v", got)
	}
	if again := c.Drain(); len(again) != 0 {
		t.Errorf("second Drain() = %v, want empty", again)
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := NewCollector()
	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.Record(Diagnostic{Code: "x"})
			}
		}()
	}
	wg.Wait()

	if got := len(c.Drain()); got != workers*perWorker {
		t.Errorf("drained %d diagnostics, want %d", got, workers*perWorker)
	}
}
