package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		def  time.Duration
		want time.Duration
	}{
		{"90m", time.Hour, 90 * time.Minute},
		{"336h", time.Hour, 336 * time.Hour},
		{"", time.Hour, time.Hour},
		{"two weeks", 5 * time.Second, 5 * time.Second},
	}

	for _, tt := range tests {
		if got := ParseDuration(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseDuration(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
