package domain

// CatalogStatus is the lifecycle status of the exercise catalog
type CatalogStatus int

const (
	CatalogIdle CatalogStatus = iota
	CatalogLoading
	CatalogReady
	CatalogFailed
)

func (s CatalogStatus) String() string {
	switch s {
	case CatalogIdle:
		return "idle"
	case CatalogLoading:
		return "loading"
	case CatalogReady:
		return "ready"
	case CatalogFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CatalogState is one of Idle, Loading, Ready(entries) or Failed(err).
// Entries is only set when Ready; Err is only set when Failed.
type CatalogState struct {
	Status  CatalogStatus
	Entries []Exercise
	Err     error
}

// IsLoading reports whether a fetch is in flight
func (s CatalogState) IsLoading() bool { return s.Status == CatalogLoading }
