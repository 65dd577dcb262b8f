// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"os"
	"svggraph/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewChartConfig returns a test store holding the default configuration changed by update.
func NewChartConfig(update func(c *config.ChartConfig)) config.Store {
	s := NewTestStore()
	c, _ := s.Lock()
	update(c)
	_ = s.Unlock(c, false)
	return s
}
