package types

// Stage is the provider-reported build/deploy progress of a branch.
type Stage string

const (
	StagePending      Stage = "PENDING"
	StageProvisioning Stage = "PROVISIONING"
	StageRunning      Stage = "RUNNING"
	StageSucceed      Stage = "SUCCEED"
	StageProduction   Stage = "PRODUCTION"
	StageFailed       Stage = "FAILED"
	StageCancelling   Stage = "CANCELLING"

	// StageNoBranches is not a transition; it marks an app without branches.
	StageNoBranches Stage = "NO_BRANCHES"
)

func (x Stage) IsSuccess() bool {
	return x == StageSucceed || x == StageProduction
}

func (x Stage) IsFailure() bool {
	return x == StageFailed
}

func (x Stage) IsAborted() bool {
	return x == StageCancelling
}

// IsTerminal reports whether no further transition is expected.
func (x Stage) IsTerminal() bool {
	return x.IsSuccess() || x.IsFailure() || x.IsAborted()
}

func (x Stage) String() string { return string(x) }

// DeploymentStatus is the local mirror of Stage plus bookkeeping values.
type DeploymentStatus string

const (
	DeploymentStatusProvisioning DeploymentStatus = "PROVISIONING"
	DeploymentStatusDeploying    DeploymentStatus = "DEPLOYING"
)

func StatusFromStage(stage Stage) DeploymentStatus {
	return DeploymentStatus(stage)
}

func (x DeploymentStatus) String() string { return string(x) }
