package amplify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	amptypes "github.com/aws/aws-sdk-go-v2/service/amplify/types"
	"github.com/aws/smithy-go"
	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const serviceName = "amplify"

// amplifyAPI is the subset of the Amplify SDK client used by Client.
type amplifyAPI interface {
	CreateApp(ctx context.Context, params *amplify.CreateAppInput, optFns ...func(*amplify.Options)) (*amplify.CreateAppOutput, error)
	CreateBranch(ctx context.Context, params *amplify.CreateBranchInput, optFns ...func(*amplify.Options)) (*amplify.CreateBranchOutput, error)
	StartJob(ctx context.Context, params *amplify.StartJobInput, optFns ...func(*amplify.Options)) (*amplify.StartJobOutput, error)
	GetApp(ctx context.Context, params *amplify.GetAppInput, optFns ...func(*amplify.Options)) (*amplify.GetAppOutput, error)
	GetBranch(ctx context.Context, params *amplify.GetBranchInput, optFns ...func(*amplify.Options)) (*amplify.GetBranchOutput, error)
	ListBranches(ctx context.Context, params *amplify.ListBranchesInput, optFns ...func(*amplify.Options)) (*amplify.ListBranchesOutput, error)
	ListApps(ctx context.Context, params *amplify.ListAppsInput, optFns ...func(*amplify.Options)) (*amplify.ListAppsOutput, error)
	ListJobs(ctx context.Context, params *amplify.ListJobsInput, optFns ...func(*amplify.Options)) (*amplify.ListJobsOutput, error)
	UpdateApp(ctx context.Context, params *amplify.UpdateAppInput, optFns ...func(*amplify.Options)) (*amplify.UpdateAppOutput, error)
}

type Client struct {
	api    amplifyAPI
	region types.Region
}

var _ interfaces.Hosting = (*Client)(nil)

type Option func(*options)

type options struct {
	profile  string
	endpoint string
}

// WithProfile selects a named profile from the shared AWS config.
func WithProfile(profile string) Option {
	return func(o *options) {
		o.profile = profile
	}
}

// WithEndpoint overrides the Amplify API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

func New(ctx context.Context, region types.Region, opts ...Option) (*Client, error) {
	if region == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "region is empty")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region.String()),
	}
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("region", region), goerr.V("profile", o.profile))
	}

	api := amplify.NewFromConfig(cfg, func(opt *amplify.Options) {
		if o.endpoint != "" {
			opt.BaseEndpoint = aws.String(o.endpoint)
		}
	})

	return newWithAPI(api, region), nil
}

func newWithAPI(api amplifyAPI, region types.Region) *Client {
	return &Client{api: api, region: region}
}

func (x *Client) Region() types.Region {
	return x.region
}

// toAPIError converts an SDK failure into *model.APIError carrying the
// service error code and request ID when they are available.
func toAPIError(err error, msg string, values ...goerr.Option) error {
	apiErr := &model.APIError{Service: serviceName, Message: err.Error()}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		apiErr.Code = ae.ErrorCode()
		apiErr.Message = ae.ErrorMessage()
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		apiErr.StatusCode = re.HTTPStatusCode()
		apiErr.RequestID = re.ServiceRequestID()
	}

	if apiErr.Code == "" && apiErr.StatusCode == 0 {
		return goerr.Wrap(err, msg, values...)
	}

	values = append(values,
		goerr.V("code", apiErr.Code),
		goerr.V("request_id", apiErr.RequestID),
	)
	return goerr.Wrap(apiErr, msg, values...)
}

func platformOf(framework types.Framework) amptypes.Platform {
	if framework == types.FrameworkNextJS {
		return amptypes.PlatformWebCompute
	}
	return amptypes.PlatformWeb
}

func (x *Client) CreateApp(ctx context.Context, input *model.CreateAppInput) (*model.RemoteApp, error) {
	req := &amplify.CreateAppInput{
		Name:                 aws.String(string(input.Name)),
		Repository:           aws.String(input.Repository.URL),
		AccessToken:          aws.String(string(input.Token)),
		Platform:             platformOf(input.Framework),
		EnvironmentVariables: input.Environment,
	}
	if input.BuildSpec != "" {
		req.BuildSpec = aws.String(input.BuildSpec)
	}

	logging.From(ctx).Info("Creating Amplify app",
		slog.Any("name", input.Name),
		slog.String("repository", input.Repository.URL),
		slog.Any("token", input.Token),
		slog.Int("env_count", len(input.Environment)),
	)

	out, err := x.api.CreateApp(ctx, req)
	if err != nil {
		return nil, toAPIError(err, "failed to create app", goerr.V("name", input.Name))
	}
	return x.toRemoteApp(out.App), nil
}

func (x *Client) CreateBranch(ctx context.Context, appID types.AppID, branch types.BranchName) error {
	_, err := x.api.CreateBranch(ctx, &amplify.CreateBranchInput{
		AppId:           aws.String(appID.String()),
		BranchName:      aws.String(branch.String()),
		Stage:           amptypes.StageProduction,
		EnableAutoBuild: aws.Bool(true),
	})
	if err != nil {
		return toAPIError(err, "failed to create branch", goerr.V("app_id", appID), goerr.V("branch", branch))
	}
	return nil
}

func (x *Client) StartBuild(ctx context.Context, appID types.AppID, branch types.BranchName) (string, error) {
	out, err := x.api.StartJob(ctx, &amplify.StartJobInput{
		AppId:      aws.String(appID.String()),
		BranchName: aws.String(branch.String()),
		JobType:    amptypes.JobTypeRelease,
	})
	if err != nil {
		return "", toAPIError(err, "failed to start job", goerr.V("app_id", appID), goerr.V("branch", branch))
	}

	var jobID string
	if out.JobSummary != nil {
		jobID = aws.ToString(out.JobSummary.JobId)
	}
	return jobID, nil
}

func (x *Client) GetApp(ctx context.Context, appID types.AppID) (*model.RemoteApp, error) {
	out, err := x.api.GetApp(ctx, &amplify.GetAppInput{AppId: aws.String(appID.String())})
	if err != nil {
		return nil, toAPIError(err, "failed to get app", goerr.V("app_id", appID))
	}
	return x.toRemoteApp(out.App), nil
}

// GetBranch reports the branch stage derived from its most recent job.
func (x *Client) GetBranch(ctx context.Context, appID types.AppID, branch types.BranchName) (*model.Branch, error) {
	out, err := x.api.GetBranch(ctx, &amplify.GetBranchInput{
		AppId:      aws.String(appID.String()),
		BranchName: aws.String(branch.String()),
	})
	if err != nil {
		return nil, toAPIError(err, "failed to get branch", goerr.V("app_id", appID), goerr.V("branch", branch))
	}

	jobs, err := x.api.ListJobs(ctx, &amplify.ListJobsInput{
		AppId:      aws.String(appID.String()),
		BranchName: aws.String(branch.String()),
	})
	if err != nil {
		return nil, toAPIError(err, "failed to list jobs", goerr.V("app_id", appID), goerr.V("branch", branch))
	}

	result := &model.Branch{Name: branch}
	var branchStage amptypes.Stage
	if out.Branch != nil {
		branchStage = out.Branch.Stage
		result.ActiveJobID = aws.ToString(out.Branch.ActiveJobId)
		result.UpdatedAt = aws.ToTime(out.Branch.UpdateTime)
	}
	result.Stage = deriveStage(branchStage, jobs.JobSummaries)
	return result, nil
}

// deriveStage maps the latest job status onto the branch stage machine. Jobs
// are listed newest first.
func deriveStage(branchStage amptypes.Stage, jobs []amptypes.JobSummary) types.Stage {
	if len(jobs) == 0 {
		return types.StagePending
	}

	switch jobs[0].Status {
	case amptypes.JobStatusPending:
		return types.StagePending
	case amptypes.JobStatusProvisioning:
		return types.StageProvisioning
	case amptypes.JobStatusRunning:
		return types.StageRunning
	case amptypes.JobStatusFailed:
		return types.StageFailed
	case amptypes.JobStatusCancelling, amptypes.JobStatusCancelled:
		return types.StageCancelling
	case amptypes.JobStatusSucceed:
		if branchStage == amptypes.StageProduction {
			return types.StageProduction
		}
		return types.StageSucceed
	default:
		return types.Stage(jobs[0].Status)
	}
}

// ListBranches returns branch names; Stage is left empty.
func (x *Client) ListBranches(ctx context.Context, appID types.AppID) ([]*model.Branch, error) {
	var branches []*model.Branch
	var nextToken *string

	for {
		out, err := x.api.ListBranches(ctx, &amplify.ListBranchesInput{
			AppId:     aws.String(appID.String()),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, toAPIError(err, "failed to list branches", goerr.V("app_id", appID))
		}

		for _, b := range out.Branches {
			branches = append(branches, &model.Branch{
				Name:        types.BranchName(aws.ToString(b.BranchName)),
				ActiveJobID: aws.ToString(b.ActiveJobId),
				UpdatedAt:   aws.ToTime(b.UpdateTime),
			})
		}

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}

	return branches, nil
}

func (x *Client) ListApps(ctx context.Context) ([]*model.RemoteApp, error) {
	var apps []*model.RemoteApp
	var nextToken *string

	for {
		out, err := x.api.ListApps(ctx, &amplify.ListAppsInput{NextToken: nextToken})
		if err != nil {
			return nil, toAPIError(err, "failed to list apps")
		}

		for i := range out.Apps {
			apps = append(apps, x.toRemoteApp(&out.Apps[i]))
		}

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}

	logging.From(ctx).Debug("Listed Amplify apps", slog.Int("count", len(apps)), slog.Any("region", x.region))
	return apps, nil
}

func (x *Client) UpdateAppEnvironment(ctx context.Context, appID types.AppID, env map[string]string) error {
	_, err := x.api.UpdateApp(ctx, &amplify.UpdateAppInput{
		AppId:                aws.String(appID.String()),
		EnvironmentVariables: env,
	})
	if err != nil {
		return toAPIError(err, "failed to update app environment", goerr.V("app_id", appID), goerr.V("count", len(env)))
	}
	return nil
}

func (x *Client) toRemoteApp(app *amptypes.App) *model.RemoteApp {
	if app == nil {
		return &model.RemoteApp{Region: x.region}
	}
	return &model.RemoteApp{
		ID:                   types.AppID(aws.ToString(app.AppId)),
		Name:                 types.AppName(aws.ToString(app.Name)),
		DefaultDomain:        aws.ToString(app.DefaultDomain),
		Region:               x.region,
		Repository:           aws.ToString(app.Repository),
		EnvironmentVariables: app.EnvironmentVariables,
		CreatedAt:            aws.ToTime(app.CreateTime),
	}
}
