// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"fmt"

	"github.com/zhangyunhao116/skipmap"
)

// Registry hands out one RuleSet per render session, so that concurrent renders
// never see each other's rules. It is safe for concurrent use.
type Registry struct {
	sessions *skipmap.StringMap[*RuleSet]
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: skipmap.NewString[*RuleSet](),
	}
}

// Open creates the empty rule set of a new session.
func (r *Registry) Open(sessionId string) (*RuleSet, error) {
	s := NewRuleSet()
	if _, exists := r.sessions.LoadOrStore(sessionId, s); exists {
		return nil, fmt.Errorf("render session %s is already open", sessionId)
	}
	return s, nil
}

// Close ends a session. Its rule set must not be used afterwards.
func (r *Registry) Close(sessionId string) error {
	if _, exists := r.sessions.LoadAndDelete(sessionId); !exists {
		return fmt.Errorf("cannot close render session %s: not open", sessionId)
	}
	return nil
}

// Len is the number of open sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}
