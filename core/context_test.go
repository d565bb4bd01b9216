package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSuppressHeader(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected bool
	}{
		{"default", context.Background(), false},
		{"suppressed", WithSuppressHeader(context.Background()), true},
		{"wrong type", context.WithValue(context.Background(), suppressHeaderKey, "yes"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldSuppressHeader(tt.ctx))
		})
	}
}

// TestContextConcurrentAccess tests that context values can be safely read concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	base := context.Background()
	suppressed := WithSuppressHeader(base)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(suppressed), "goroutine %d", id)
			assert.False(t, shouldSuppressHeader(base), "goroutine %d", id)
		}(i)
	}
	wg.Wait()
}
