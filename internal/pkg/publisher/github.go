package publisher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/eren/bootcamphub/internal/pkg/apperrors"
)

const defaultBranchPrefix = "data-update"

// GitHubPublisher publishes change sets as pull requests on a GitHub
// repository: resolve the base branch head, create a uniquely named branch
// from it, create or update every file on that branch, then open the pull
// request back to the base branch.
type GitHubPublisher struct {
	client     *github.Client
	owner      string
	repo       string
	baseBranch string
	logger     zerolog.Logger
}

// NewGitHubClient creates an authenticated GitHub API client
func NewGitHubClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// NewGitHubPublisher creates a publisher targeting owner/repo@baseBranch
func NewGitHubPublisher(client *github.Client, owner, repo, baseBranch string, logger zerolog.Logger) *GitHubPublisher {
	return &GitHubPublisher{
		client:     client,
		owner:      owner,
		repo:       repo,
		baseBranch: baseBranch,
		logger:     logger,
	}
}

// CreatePullRequest implements Publisher
func (p *GitHubPublisher) CreatePullRequest(ctx context.Context, change ChangeRequest) (*PullRequest, error) {
	prefix := change.BranchPrefix
	if prefix == "" {
		prefix = defaultBranchPrefix
	}
	branchName := fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())

	// Latest commit on the base branch is the branch point
	baseRef, _, err := p.client.Git.GetRef(ctx, p.owner, p.repo, "heads/"+p.baseBranch)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving base branch %s: %v", apperrors.ErrPublishFailed, p.baseBranch, err)
	}

	newRef := &github.Reference{
		Ref:    github.String("refs/heads/" + branchName),
		Object: &github.GitObject{SHA: baseRef.Object.SHA},
	}
	if _, _, err := p.client.Git.CreateRef(ctx, p.owner, p.repo, newRef); err != nil {
		return nil, fmt.Errorf("%w: creating branch %s: %v", apperrors.ErrPublishFailed, branchName, err)
	}

	for _, file := range change.Files {
		if err := p.putFile(ctx, branchName, file); err != nil {
			return nil, err
		}
	}

	pr, _, err := p.client.PullRequests.Create(ctx, p.owner, p.repo, &github.NewPullRequest{
		Title: github.String(change.Title),
		Body:  github.String(change.Body),
		Head:  github.String(branchName),
		Base:  github.String(p.baseBranch),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening pull request from %s: %v", apperrors.ErrPublishFailed, branchName, err)
	}

	p.logger.Info().
		Str("branch", branchName).
		Str("url", pr.GetHTMLURL()).
		Int("files", len(change.Files)).
		Msg("Pull request created")

	return &PullRequest{URL: pr.GetHTMLURL(), Number: pr.GetNumber()}, nil
}

// putFile creates or updates one file's full content on the branch
func (p *GitHubPublisher) putFile(ctx context.Context, branch string, file ChangeFile) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Update %s", file.Path)),
		Content: []byte(file.Content),
		Branch:  github.String(branch),
	}

	// An existing file needs its blob SHA for the update; a missing file is
	// simply created.
	current, _, _, err := p.client.Repositories.GetContents(ctx, p.owner, p.repo, file.Path,
		&github.RepositoryContentGetOptions{Ref: p.baseBranch})
	if err == nil && current != nil {
		opts.SHA = current.SHA
	}

	if _, _, err := p.client.Repositories.CreateFile(ctx, p.owner, p.repo, file.Path, opts); err != nil {
		return fmt.Errorf("%w: writing %s on %s: %v", apperrors.ErrPublishFailed, file.Path, branch, err)
	}

	return nil
}
