package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomPhone returns a pseudo-random Bangladeshi mobile number suitable for
// registration tests that need unique phones.
func RandomPhone() string {
	return fmt.Sprintf("+88017%08d", randomIntn(100000000))
}

// RandomOTP returns a pseudo-random six digit code.
func RandomOTP() string {
	return fmt.Sprintf("%06d", randomIntn(1000000))
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
