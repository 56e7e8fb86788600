package usecase

import (
	"fmt"
	"sync"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/model"
)

// VendorSelector picks one vendor from a non-empty candidate list.
type VendorSelector interface {
	Select(specialty model.Specialty, candidates []model.Vendor) model.Vendor
}

// NewSelector builds the selector registered under name.
func NewSelector(name string) (VendorSelector, error) {
	switch name {
	case "", dispatch.SelectorFirst:
		return FirstSelector{}, nil
	case dispatch.SelectorRoundRobin:
		return NewRoundRobinSelector(), nil
	default:
		return nil, fmt.Errorf("%w: %s", dispatch.ErrUnknownSelector, name)
	}
}

// FirstSelector always takes the first vendor in registry order.
type FirstSelector struct{}

func (FirstSelector) Select(_ model.Specialty, candidates []model.Vendor) model.Vendor {
	return candidates[0]
}

// RoundRobinSelector rotates through candidates per specialty within this process.
type RoundRobinSelector struct {
	mu   sync.Mutex
	next map[model.Specialty]int
}

func NewRoundRobinSelector() *RoundRobinSelector {
	return &RoundRobinSelector{next: make(map[model.Specialty]int)}
}

func (s *RoundRobinSelector) Select(specialty model.Specialty, candidates []model.Vendor) model.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.next[specialty] % len(candidates)
	s.next[specialty] = i + 1
	return candidates[i]
}
