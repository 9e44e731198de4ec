package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

const eventIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var (
	refMu       sync.Mutex
	lastRefUnix int64
)

// GeneratePaymentReference returns a merchant payment reference of the form
// party<unix_ts>. Consecutive calls within the same second are bumped forward
// so the reference stays unique within this process; the store's unique
// constraint is the final arbiter.
func GeneratePaymentReference() string {
	refMu.Lock()
	defer refMu.Unlock()

	now := time.Now().Unix()
	if now <= lastRefUnix {
		now = lastRefUnix + 1
	}
	lastRefUnix = now

	return fmt.Sprintf("party%d", now)
}

// GenerateEventID returns a short event identifier of the form EVT plus five
// random alphanumeric characters. Callers must handle store-level collisions
// by regenerating.
func GenerateEventID() (string, error) {
	id := make([]byte, 5)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(eventIDAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate event id: %w", err)
		}
		id[i] = eventIDAlphabet[n.Int64()]
	}
	return "EVT" + string(id), nil
}
