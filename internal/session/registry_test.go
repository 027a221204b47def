package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Alive("t1"))

	r.Add("t1", "emp-1")
	assert.True(t, r.Alive("t1"))

	r.Revoke("t1")
	assert.False(t, r.Alive("t1"))

	// Revoking an unknown token is a no-op.
	r.Revoke("t1")
	assert.False(t, r.Alive("t1"))
}

func TestRegistryTracksSessionsIndependently(t *testing.T) {
	r := NewRegistry()

	r.Add("t1", "emp-1")
	r.Add("t2", "emp-1")
	r.Revoke("t1")

	assert.False(t, r.Alive("t1"))
	assert.True(t, r.Alive("t2"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			r.Add(id, "emp")
			r.Alive(id)
			r.Revoke(id)
		}(string(rune('a' + i%26)))
	}
	wg.Wait()
}
