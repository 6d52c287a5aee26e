package update

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"dev", "1.0.0", true},
		{"0.1.0", "0.2.0", true},
		{"v0.1.0", "0.1.1", true},
		{"1.0.0", "1.0.0", false},
		{"1.2.0", "1.1.9", false},
		{"1.0.0", "garbage", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Newer(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}

func TestCheckDevVersion(t *testing.T) {
	// Needs network; skip when GitHub can't be reached.
	res, err := Check(context.Background(), "dev")
	if err != nil {
		t.Skipf("skipping (likely no network): %v", err)
	}
	if res == nil {
		t.Fatal("expected non-nil result")
	}
	assert.Equal(t, "dev", res.CurrentVersion)
}
