// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrySessionsAreIsolated(t *testing.T) {
	r := NewRegistry()
	a, err := r.Open("b-render")
	assert.NoError(t, err)
	b, err := r.Open("a-render")
	assert.NoError(t, err)
	_, err = r.Open("a-render")
	assert.Error(t, err)

	assert.NoError(t, a.Configure(rectangleRules(t)...))
	assert.Len(t, a.Dispatch(0, 0, 0, "three"), 2)
	assert.Len(t, b.Dispatch(0, 0, 0, "three"), 1)
	assert.Equal(t, 2, r.Len())

	assert.NoError(t, r.Close("b-render"))
	assert.Error(t, r.Close("b-render"))
	assert.Equal(t, 1, r.Len())

	// A closed session id can be opened again, with an empty rule set.
	a, err = r.Open("b-render")
	assert.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestRegistryConcurrentSessions(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("render-%d", i)
			s, err := r.Open(id)
			if !assert.NoError(t, err) {
				return
			}
			if i%2 == 0 {
				assert.NoError(t, s.Configure(rectangleRules(t)...))
				assert.Len(t, s.Dispatch(0, 0, 0, "three"), 2)
			} else {
				assert.Len(t, s.Dispatch(0, 0, 0, "three"), 1)
			}
			assert.NoError(t, r.Close(id))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}
