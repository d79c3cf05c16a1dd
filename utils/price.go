package utils

import (
	"os"
	"strconv"
)

// DefaultPriceINR is the fixed fee for one surprise page. Override with the
// SURPRISE_PRICE_INR environment variable.
const DefaultPriceINR = 29

// PriceINR returns the configured price in whole rupees.
func PriceINR() int64 {
	if v := os.Getenv("SURPRISE_PRICE_INR"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil && p > 0 {
			return p
		}
	}
	return DefaultPriceINR
}

// PriceInPaise returns the price in paise, the unit Razorpay bills in.
func PriceInPaise() int64 {
	return PriceINR() * 100
}
