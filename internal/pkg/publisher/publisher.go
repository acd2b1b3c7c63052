// Package publisher turns a submission change set into a reviewable pull
// request against the repository holding the site data.
package publisher

import "context"

// ChangeFile is one file in a change set. Content is the complete new file
// content, not a diff.
type ChangeFile struct {
	Path    string
	Content string
}

// ChangeRequest describes one submission to publish: a title and free-text
// body for the review, plus the full contents of every touched file.
type ChangeRequest struct {
	Title string
	Body  string
	Files []ChangeFile

	// BranchPrefix names the branch the change lands on; a timestamp is
	// appended to keep branches unique. Empty means "data-update".
	BranchPrefix string
}

// PullRequest is the reviewable result of a published change
type PullRequest struct {
	URL    string
	Number int
}

// Publisher publishes a change set for review. A call either fully succeeds
// (branch, file commits and pull request all created) or returns an error;
// no cleanup of partially created branches is attempted.
type Publisher interface {
	CreatePullRequest(ctx context.Context, change ChangeRequest) (*PullRequest, error)
}
