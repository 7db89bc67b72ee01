package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_ShortLivedWorkersPass(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			time.Sleep(20 * time.Millisecond)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}

	checker.Check(0)
}

func TestSettle(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	before, _ := settle(1<<20, 0)
	go func() { <-stop }()

	n, ok := settle(before, 50*time.Millisecond)
	assert.False(t, ok, "a blocked goroutine never settles")
	assert.Greater(t, n, before)
}
