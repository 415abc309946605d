package models

import (
	"testing"
	"time"
)

func TestEligible(t *testing.T) {
	issued := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := OneTimeCode{
		Code:      "123456",
		ExpiresAt: issued.Add(5 * time.Minute),
	}

	cases := []struct {
		name string
		now  time.Time
		used bool
		want bool
	}{
		{"fresh", issued.Add(time.Minute), false, true},
		{"at expiry boundary", c.ExpiresAt, false, true},
		{"one second past expiry", c.ExpiresAt.Add(time.Second), false, false},
		{"consumed", issued.Add(time.Minute), true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.Used = tc.used
			if got := c.Eligible(tc.now); got != tc.want {
				t.Fatalf("Eligible(%v) used=%v = %v, want %v", tc.now, tc.used, got, tc.want)
			}
		})
	}
}
