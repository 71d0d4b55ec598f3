package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerLockerSerializesSamePhone(t *testing.T) {
	locker := NewCustomerLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("+254712345678")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestCustomerLockerIndependentPhones(t *testing.T) {
	locker := NewCustomerLocker()

	unlockA := locker.Lock("+254700000001")
	// A different phone must not block
	unlockB := locker.Lock("+254700000002")
	unlockB()
	unlockA()

	// Re-acquire after unlock works
	unlock := locker.Lock("+254700000001")
	unlock()
}
