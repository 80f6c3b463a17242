package vcs

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

type Authentication interface {
	AuthenticateWithToken() *http.Client
}

type TokenAuth struct {
	Token string
}

func (auth TokenAuth) AuthenticateWithToken() *http.Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: auth.Token})
	return oauth2.NewClient(context.Background(), tokenSource)
}

type SourceControl interface {
	WorkingPath() string

	Cmd(args ...string) (string, error)
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
