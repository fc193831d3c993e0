package keylock

import (
	"sync"
	"testing"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	kl := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kl.WithLock("shop-a", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	kl := New()

	kl.Lock("shop-a")
	done := make(chan struct{})
	go func() {
		kl.Lock("shop-b")
		kl.Unlock("shop-b")
		close(done)
	}()
	<-done
	kl.Unlock("shop-a")
}

func TestEntriesAreReleased(t *testing.T) {
	kl := New()
	_ = kl.WithLock("shop-a", func() error { return nil })
	_ = kl.WithLock("shop-b", func() error { return nil })

	kl.mu.Lock()
	n := len(kl.locks)
	kl.mu.Unlock()
	if n != 0 {
		t.Fatalf("len(locks) = %d after all unlocks, want 0", n)
	}
}
