package domain

// ChunkStatus tracks one window through the fetch-parse-save pipeline.
type ChunkStatus string

const (
	ChunkPending     ChunkStatus = "pending"
	ChunkFetching    ChunkStatus = "fetching"
	ChunkFetchFailed ChunkStatus = "fetch_failed"
	ChunkFetched     ChunkStatus = "fetched"
	ChunkParsing     ChunkStatus = "parsing"
	ChunkParseFailed ChunkStatus = "parse_failed"
	ChunkParsed      ChunkStatus = "parsed"
	ChunkSaving      ChunkStatus = "saving"
	ChunkSaveFailed  ChunkStatus = "save_failed"
	ChunkSaved       ChunkStatus = "saved"
)

// Terminal reports whether no further transition is possible for the chunk.
func (s ChunkStatus) Terminal() bool {
	switch s {
	case ChunkFetchFailed, ChunkParseFailed, ChunkSaveFailed, ChunkSaved:
		return true
	}
	return false
}

// Failed reports whether the chunk ended in a failure state.
func (s ChunkStatus) Failed() bool {
	switch s {
	case ChunkFetchFailed, ChunkParseFailed, ChunkSaveFailed:
		return true
	}
	return false
}

// ChunkResult is the transient outcome of one window's pipeline run. It is
// consumed by the orchestrator for aggregation and discarded afterwards.
type ChunkResult struct {
	Window  FetchWindow
	Status  ChunkStatus
	Raw     string
	Records []ExchangeRateRecord
	Err     error
}
