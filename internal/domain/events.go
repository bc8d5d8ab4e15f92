package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFetchRequested EventType = "FetchRequested"
	EventFetchStarted   EventType = "FetchStarted"
	EventDatasetLoaded  EventType = "DatasetLoaded"
	EventDatasetFailed  EventType = "DatasetFailed"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FetchRequestedEvent is emitted to request a dataset fetch
type FetchRequestedEvent struct{}

func (e FetchRequestedEvent) Type() EventType { return EventFetchRequested }

// FetchStartedEvent is emitted when a dataset fetch begins
type FetchStartedEvent struct {
	URL string
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// DatasetLoadedEvent is emitted when the dataset has been fetched and decoded
type DatasetLoadedEvent struct {
	Countries []Country
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// DatasetFailedEvent is emitted when a dataset fetch fails
type DatasetFailedEvent struct {
	Err error
}

func (e DatasetFailedEvent) Type() EventType { return EventDatasetFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
