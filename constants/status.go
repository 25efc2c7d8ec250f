package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in the cache DB).
const (
	RunStatusRunning RunStatus = "RUNNING" // in progress
	RunStatusTextOK  RunStatus = "TEXT_OK" // stage 1 completed (text recovered)
	RunStatusOK      RunStatus = "OK"      // stage 2 completed (fields extracted)
	RunStatusFailed  RunStatus = "FAILED"  // terminal failure
)
