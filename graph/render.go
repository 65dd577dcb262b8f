// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"errors"
	"fmt"
	"log"
	"svggraph/config"
	"svggraph/shape"
	"sync"
)

// Renderer lays out charts which share one configuration. Every chart is laid out
// in its own session of the shape registry, so the shape rules of a data file
// never apply to other charts.
type Renderer struct {
	cfg      config.ChartConfig
	registry *shape.Registry
	logger   *log.Logger
}

func NewRenderer(cfg config.ChartConfig, registry *shape.Registry, logger *log.Logger) *Renderer {
	if registry == nil {
		registry = shape.NewRegistry()
	}
	return &Renderer{
		cfg:      cfg,
		registry: registry,
		logger:   defaultLogger(logger),
	}
}

// Render lays out d in the render session sessionId, which must not be open.
func (r *Renderer) Render(sessionId string, d DataFile) (Layout, error) {
	rules, err := r.registry.Open(sessionId)
	if err != nil {
		return Layout{}, err
	}
	defer r.registry.Close(sessionId)

	c := r.cfg
	c.Shapes = append(append([]shape.RuleConfig(nil), r.cfg.Shapes...), d.Shapes...)
	if err := c.ConfigureRuleSet(rules); err != nil {
		return Layout{}, err
	}
	return Build(c, d, rules, r.logger)
}

// RenderFiles reads and lays out data files concurrently. The layouts are returned in
// the order of paths, the errors of all failed files are joined.
func (r *Renderer) RenderFiles(paths []string) ([]Layout, error) {
	layouts := make([]Layout, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			d, err := ReadDataFile(path)
			if err == nil {
				// The same file may be given more than once.
				layouts[i], err = r.Render(fmt.Sprintf("%s#%d", path, i), d)
			}
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
			}
		}(i, path)
	}
	wg.Wait()
	return layouts, errors.Join(errs...)
}
