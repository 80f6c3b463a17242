package repositorymanagementsystem

import (
	"context"
	"fmt"

	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/project"
	"github.com/coveooss/ferry/lib/ferry/vcs"
	"github.com/google/go-github/v32/github"
)

type GitHub struct {
	URL            string
	authentication vcs.Authentication
}

func NewGitHub(authentication vcs.Authentication, project project.Project) GitHub {
	return GitHub{
		URL:            "https://github.com/" + project.Owner + "/" + project.Name,
		authentication: authentication,
	}
}

func (gh GitHub) GetURL() string {
	return gh.URL
}

func (gh GitHub) GetCommit(owner string, repo string, sha string) (Commit, error) {
	httpClient := gh.authentication.AuthenticateWithToken()
	client := github.NewClient(httpClient)

	repositoryCommit, _, err := client.Repositories.GetCommit(context.Background(), owner, repo, sha)
	if err != nil {
		log.Logger.Errorf("Error getting commit %s", sha)
		return Commit{}, err
	}

	return Commit{
		Hash:           repositoryCommit.GetSHA(),
		Message:        repositoryCommit.GetCommit().GetMessage(),
		AuthorLogin:    repositoryCommit.GetAuthor().GetLogin(),
		CommitterLogin: repositoryCommit.GetCommitter().GetLogin(),
		AuthorDate:     repositoryCommit.GetCommit().GetAuthor().GetDate(),
		ParentCount:    len(repositoryCommit.Parents),
	}, nil
}

func (gh GitHub) GetPullRequestsForCommit(owner string, repo string, sha string) ([]PullRequest, error) {
	httpClient := gh.authentication.AuthenticateWithToken()
	client := github.NewClient(httpClient)

	options := github.PullRequestListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	prs, _, err := client.PullRequests.ListPullRequestsWithCommit(context.Background(), owner, repo, sha, &options)
	if err != nil {
		log.Logger.Errorf("Error listing pull requests for commit %s", sha)
		return nil, err
	}

	var pullRequests []PullRequest
	for _, pr := range prs {
		pullRequests = append(pullRequests, PullRequest{
			Number:         pr.GetNumber(),
			Title:          pr.GetTitle(),
			MergeCommitSHA: pr.GetMergeCommitSHA(),
		})
	}
	return pullRequests, nil
}

// GetMergerOfPullRequest returns the login of whoever merged the pull
// request. For externally contributed pull requests this is the reviewer who
// pressed merge, not the pull request author.
func (gh GitHub) GetMergerOfPullRequest(owner string, repo string, pullRequest PullRequest) (string, error) {
	if pullRequest.MergeCommitSHA == "" {
		return "", fmt.Errorf("Pull request #%d has no merge commit", pullRequest.Number)
	}

	mergeCommit, err := gh.GetCommit(owner, repo, pullRequest.MergeCommitSHA)
	if err != nil {
		return "", err
	}
	if mergeCommit.AuthorLogin == "" {
		return "", fmt.Errorf("Could not find the merger of pull request #%d", pullRequest.Number)
	}
	return mergeCommit.AuthorLogin, nil
}

func (gh GitHub) CreatePullRequest(sourceBranch string, destBranch string, owner string, repo string, title string, description string) (PullRequest, error) {
	httpClient := gh.authentication.AuthenticateWithToken()
	client := github.NewClient(httpClient)

	// Checks are not triggered on PRs created by a workflow token. The PR is
	// created as a draft so a maintainer can mark it ready, which triggers
	// the checks.
	draft := true
	newPR := github.NewPullRequest{
		Title: &title,
		Head:  &sourceBranch,
		Base:  &destBranch,
		Body:  &description,
		Draft: &draft,
	}

	pr, _, err := client.PullRequests.Create(context.Background(), owner, repo, &newPR)
	if err != nil {
		log.Logger.Error("Error creating GitHub Pull Request")
		return PullRequest{}, err
	}

	log.Logger.Info(fmt.Sprintf("Created Pull Request #%d", pr.GetNumber()))

	return PullRequest{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		MergeCommitSHA: pr.GetMergeCommitSHA(),
	}, nil
}

func (gh GitHub) AssignPullRequest(owner string, repo string, pullRequestNumber int, assignee string) error {
	httpClient := gh.authentication.AuthenticateWithToken()
	client := github.NewClient(httpClient)

	_, _, err := client.Issues.AddAssignees(context.Background(), owner, repo, pullRequestNumber, []string{assignee})
	if err != nil {
		log.Logger.Errorf("Error assigning @%s to pull request #%d", assignee, pullRequestNumber)
		return err
	}
	return nil
}
