package command

import (
	"time"

	managementsystem "github.com/coveooss/ferry/lib/ferry/repositorymanagementsystem"
)

type sourceControl interface {
	WorkingPath() string
	LogCommitRange(targetBranch string, sourceBranch string) ([]string, error)
	RemoteBranchExists(branch string) (bool, error)
	ShortRemoteRev(branch string) (string, error)
	CheckoutNewBranch(branch string, fromBranch string) (string, error)
	Add(paths ...string) (string, error)
	Commit(message string) (string, error)
	AmendCommit(message string) (string, error)
	SoftResetOne() (string, error)
	Push(branch string) (string, error)
}

type provider interface {
	GetCommit(owner string, repo string, sha string) (managementsystem.Commit, error)
	GetPullRequestsForCommit(owner string, repo string, sha string) ([]managementsystem.PullRequest, error)
	GetMergerOfPullRequest(owner string, repo string, pullRequest managementsystem.PullRequest) (string, error)
	CreatePullRequest(sourceBranch string, destBranch string, owner string, repo string, title string, description string) (managementsystem.PullRequest, error)
	AssignPullRequest(owner string, repo string, pullRequestNumber int, assignee string) error
}

type versionStore interface {
	CurrentVersion(dir string) (string, error)
	WriteVersion(dir string, version string) error
	BackportVersion(version string) (string, error)
}

type changelogStore interface {
	Release(dir string, version string, date time.Time) error
	RewriteMajorHeadings(dir string, fromVersion string, toVersion string) error
}
