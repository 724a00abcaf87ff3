package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type pollStep int

const (
	pollContinue pollStep = iota
	pollSettled
	pollFailed
	pollCancelled
	pollPartial
	pollTimeout
)

// pollTracker decides what to do after each stage observation. It holds no
// timing; the caller sleeps between attempts.
type pollTracker struct {
	opts            model.PollOptions
	attempts        int
	partialReported bool
}

func newPollTracker(opts model.PollOptions) *pollTracker {
	return &pollTracker{opts: opts}
}

func (x *pollTracker) observe(stage types.Stage) pollStep {
	x.attempts++

	switch {
	case stage.IsSuccess():
		return pollSettled
	case stage.IsFailure():
		return pollFailed
	case stage.IsAborted():
		return pollCancelled
	}

	if x.attempts >= x.opts.MaxAttempts {
		return pollTimeout
	}
	if x.opts.PartialEnabled() && !x.partialReported && x.attempts >= x.opts.PartialSuccessThreshold {
		x.partialReported = true
		return pollPartial
	}
	return pollContinue
}

// PollStatus reads the branch stage at a fixed interval until it settles,
// fails, crosses the partial-success threshold or runs out of attempts.
// Partial success and timeout are results, not errors.
func (x *UseCase) PollStatus(ctx context.Context, input *model.PollInput) (*model.PollResult, error) {
	opts := input.Options
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	hosting, err := x.clients.HostingFor(ctx, input.Region)
	if err != nil {
		return nil, err
	}

	domain := input.DefaultDomain
	if domain == "" {
		app, err := hosting.GetApp(ctx, input.AppID)
		if err != nil {
			return nil, x.classifyAppLookupError(ctx, hosting, err, input.AppID)
		}
		domain = app.DefaultDomain
	}
	url := model.BranchURL(input.Branch, domain)

	logger := logging.From(ctx).With(
		slog.Any("app_id", input.AppID),
		slog.Any("branch", input.Branch),
	)
	clock := x.clients.Clock()
	tracker := newPollTracker(opts)

	result := func(outcome model.PollOutcome, stage types.Stage) *model.PollResult {
		return &model.PollResult{
			Outcome:  outcome,
			AppID:    input.AppID,
			Branch:   input.Branch,
			Stage:    stage,
			URL:      url,
			Live:     stage == types.StageProduction,
			Attempts: tracker.attempts,
		}
	}

	for {
		if tracker.attempts > 0 {
			if err := clock.Sleep(ctx, opts.Interval); err != nil {
				return nil, goerr.Wrap(err, "polling interrupted",
					goerr.V("app_id", input.AppID),
					goerr.V("attempts", tracker.attempts),
					goerr.V("url", url),
				)
			}
		}

		var stage types.Stage
		branch, err := hosting.GetBranch(ctx, input.AppID, input.Branch)
		if err != nil {
			logger.Warn("Failed to read branch stage, retrying", slog.Any("error", err), slog.Int("attempt", tracker.attempts+1))
		} else {
			stage = branch.Stage
		}

		step := tracker.observe(stage)
		logger.Debug("Branch stage observed", slog.Any("stage", stage), slog.Int("attempt", tracker.attempts))

		switch step {
		case pollSettled:
			logger.Info("Deployment settled", slog.Any("stage", stage), slog.String("url", url))
			return result(model.PollOutcomeSettled, stage), nil

		case pollFailed:
			return nil, goerr.Wrap(types.ErrBuildFailed, "build failed on the hosting provider",
				goerr.V("app_id", input.AppID),
				goerr.V("branch", input.Branch),
				goerr.V("stage", stage),
				goerr.V("attempts", tracker.attempts),
				goerr.V("url", url),
			)

		case pollCancelled:
			return nil, goerr.Wrap(types.ErrBuildCancelled, "build was cancelled on the hosting provider",
				goerr.V("app_id", input.AppID),
				goerr.V("branch", input.Branch),
				goerr.V("stage", stage),
				goerr.V("attempts", tracker.attempts),
				goerr.V("url", url),
			)

		case pollTimeout:
			logger.Warn("Polling timed out, use status check to follow the build",
				slog.Any("stage", stage),
				slog.Int("attempts", tracker.attempts),
				slog.String("tentative_url", url),
			)
			return result(model.PollOutcomeTimeout, stage), nil

		case pollPartial:
			logger.Info("Build is still running",
				slog.Any("stage", stage),
				slog.Int("attempts", tracker.attempts),
				slog.String("tentative_url", url),
			)
			if !opts.ContinueAfterPartial {
				return result(model.PollOutcomePartialSuccess, stage), nil
			}
		}
	}
}
