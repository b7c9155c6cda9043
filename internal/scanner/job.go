package scanner

import (
	"a11yscanner/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// uniqueStates are the job states in which a duplicate insert is skipped.
var uniqueStates = []rivertype.JobState{ //nolint: gochecknoglobals
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// FullScanJobArgs contains the arguments of a background scan submitted to River.
// Only one background scan may be queued or running at a time.
type FullScanJobArgs struct {
	Request StartRequest `json:"request"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args FullScanJobArgs) Kind() string { return "FullScanJob" }

// InsertOpts makes the job unique by kind alone, so a second background scan
// is skipped while one is pending or running.
func (args FullScanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByState: uniqueStates,
		},
	}
}

// RescanContentJobArgs contains the arguments of a single item rescan.
type RescanContentJobArgs struct {
	// ContentID is marked as unique so River keeps one pending rescan per item.
	ContentID domain.ContentID `json:"contentId" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the rescan worker.
func (args RescanContentJobArgs) Kind() string { return "RescanContentJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args RescanContentJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: uniqueStates,
		},
	}
}
