package vcs

import (
	"fmt"
	"strings"

	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/os"
)

type GitRepo struct {
	localPath string
	remote    string
}

// NewGit wraps an existing checkout. All remote operations go through the
// origin remote of that checkout.
func NewGit(localPath string) GitRepo {
	return GitRepo{
		localPath: localPath,
		remote:    "origin",
	}
}

func (gitRepo GitRepo) WorkingPath() string {
	return gitRepo.localPath
}

func (gitRepo GitRepo) Cmd(args ...string) (string, error) {
	return os.Execute(gitRepo.localPath, "git", args...)
}

// LogCommitRange returns the hashes of the commits reachable from the source
// branch but not from the target branch, newest first.
func (gitRepo GitRepo) LogCommitRange(targetBranch string, sourceBranch string) ([]string, error) {
	out, err := gitRepo.Cmd("log", "--pretty=format:%H", fmt.Sprintf("%s/%s..%s/%s", gitRepo.remote, targetBranch, gitRepo.remote, sourceBranch))
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

func (gitRepo GitRepo) RemoteBranchExists(branch string) (bool, error) {
	out, err := gitRepo.Cmd("ls-remote", "--heads", gitRepo.remote, branch)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (gitRepo GitRepo) ShortRemoteRev(branch string) (string, error) {
	out, err := gitRepo.Cmd("rev-parse", "--short", gitRepo.remote+"/"+branch)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (gitRepo GitRepo) CheckoutNewBranch(branch string, fromBranch string) (string, error) {
	return gitRepo.Cmd("checkout", "-b", branch, gitRepo.remote+"/"+fromBranch)
}

func (gitRepo GitRepo) Add(paths ...string) (string, error) {
	return gitRepo.Cmd(append([]string{"add"}, paths...)...)
}

func (gitRepo GitRepo) Commit(message string) (string, error) {
	return gitRepo.Cmd("commit", "-m", message)
}

func (gitRepo GitRepo) AmendCommit(message string) (string, error) {
	return gitRepo.Cmd("commit", "--amend", "-m", message)
}

// SoftResetOne drops the latest commit while keeping its changes staged.
func (gitRepo GitRepo) SoftResetOne() (string, error) {
	return gitRepo.Cmd("reset", "--soft", "HEAD~1")
}

func (gitRepo GitRepo) Push(branch string) (string, error) {
	log.Logger.Infof("Pushing %s to %s", branch, gitRepo.remote)
	return gitRepo.Cmd("push", gitRepo.remote, branch)
}
