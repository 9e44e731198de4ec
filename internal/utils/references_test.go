package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentReference_Format(t *testing.T) {
	ref := GeneratePaymentReference()
	assert.Regexp(t, `^party\d+$`, ref)
}

func TestGeneratePaymentReference_UniqueUnderConcurrency(t *testing.T) {
	const n = 100

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ref := GeneratePaymentReference()

			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[ref], "duplicate reference %s", ref)
			seen[ref] = true
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestGenerateEventID(t *testing.T) {
	id, err := GenerateEventID()
	require.NoError(t, err)
	assert.Regexp(t, `^EVT[A-Za-z0-9]{5}$`, id)
}
