package repositorymanagementsystem

import (
	"time"
)

// MergeBotLogin is the committer login the hosting platform stamps on merge
// commits created through its merge button.
const MergeBotLogin = "web-flow"

type Commit struct {
	Hash           string
	Message        string
	AuthorLogin    string
	CommitterLogin string
	AuthorDate     time.Time
	ParentCount    int
}

func (commit Commit) ShortHash() string {
	if len(commit.Hash) <= 8 {
		return commit.Hash
	}
	return commit.Hash[:8]
}

// IsBotMergeCommit reports whether the commit was produced by the platform's
// merge button rather than authored directly.
func (commit Commit) IsBotMergeCommit() bool {
	return commit.CommitterLogin == MergeBotLogin && commit.ParentCount > 1
}

type PullRequest struct {
	Number         int
	Title          string
	MergeCommitSHA string
	MergerLogin    string
}
