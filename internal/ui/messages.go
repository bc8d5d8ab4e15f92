package ui

import (
	"atlas/internal/domain"
)

// EventMsg wraps a domain event for delivery into the Update loop
type EventMsg struct {
	Event domain.DomainEvent
}

// detailPagerMsg contains the result of a detail pager command
type detailPagerMsg struct {
	err error
}
