package usecase

import (
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
)

// Export unexported functions for testing
var (
	AppNameFromPathForTest       = appNameFromPath
	LocateEnvFilesForTest        = locateEnvFiles
	HasScopeForTest              = hasScope
	ClassifyProviderErrorForTest = classifyProviderError
	ChooseBranchForTest          = chooseBranch
)

type PollStepForTest = pollStep

const (
	PollContinueForTest  = pollContinue
	PollSettledForTest   = pollSettled
	PollFailedForTest    = pollFailed
	PollCancelledForTest = pollCancelled
	PollPartialForTest   = pollPartial
	PollTimeoutForTest   = pollTimeout
)

// ObservePollStagesForTest feeds stages to a fresh tracker and returns each step.
func ObservePollStagesForTest(opts model.PollOptions, stages []types.Stage) []PollStepForTest {
	tracker := newPollTracker(opts)
	steps := make([]pollStep, 0, len(stages))
	for _, s := range stages {
		steps = append(steps, tracker.observe(s))
	}
	return steps
}
