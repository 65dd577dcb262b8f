// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

type Store interface {
	GetName() string
	Lock() (*ChartConfig, error)
	Unlock(c *ChartConfig, forceWriting bool) error
	Copy() (ChartConfig, error)
}
