// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import "svggraph/config"

type TestStore struct {
	chartConfig config.ChartConfig
}

// Test configurations are not stored and not thread safe.
// Intended only for use in unit tests.
func NewTestStore() config.Store {
	return &TestStore{
		chartConfig: config.NewChartConfig(),
	}
}

func (t *TestStore) GetName() string {
	return "test"
}

func (t *TestStore) Lock() (*config.ChartConfig, error) {
	return &t.chartConfig, nil
}

func (t *TestStore) Unlock(c *config.ChartConfig, forceWriting bool) error {
	t.chartConfig = *c
	return nil
}

func (t *TestStore) Copy() (config.ChartConfig, error) {
	return t.chartConfig, nil
}
