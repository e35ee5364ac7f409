package constants

// JobStatus is the canonical status for rows in import_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // created, not yet started
	JobStatusExtracting JobStatus = "EXTRACTING" // stage 1 in progress (layout extraction)
	JobStatusLoading    JobStatus = "LOADING"    // stage 2 in progress (harmonize + upsert)
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

func JobStatuses() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusExtracting),
		string(JobStatusLoading),
		string(JobStatusCompleted),
		string(JobStatusFailed),
	}
}
