package usecase

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount interprets a user-entered USD amount. Non-numeric or empty
// input quotes as zero instead of failing so the live form preview never
// breaks mid-typing. Submission separately requires a positive amount.
func ParseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}
