package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/project"
	managementsystem "github.com/coveooss/ferry/lib/ferry/repositorymanagementsystem"
)

// ReleasePlan is everything the pull request description needs, resolved up
// front so rendering makes no further calls.
type ReleasePlan struct {
	SourceBranch   string
	TargetBranch   string
	NewBranchName  string
	ShortSourceSHA string
	Conductor      string

	PullRequests  []managementsystem.PullRequest
	OrphanCommits []managementsystem.Commit

	IncludeMergebackReminder bool
}

// commitDifference returns the commits on the source branch that the target
// branch does not have, skipping the merge commits the platform generated
// when pull requests were merged.
func commitDifference(project project.Project, sourceControl sourceControl, provider provider, sourceBranch string, targetBranch string) ([]managementsystem.Commit, error) {
	hashes, err := sourceControl.LogCommitRange(targetBranch, sourceBranch)
	if err != nil {
		return nil, err
	}

	commits := make([]managementsystem.Commit, 0, len(hashes))
	for _, hash := range hashes {
		commit, err := provider.GetCommit(project.Owner, project.Name, hash)
		if err != nil {
			return nil, err
		}
		if commit.IsBotMergeCommit() {
			log.Logger.Tracef("Skipping merge commit %s", commit.ShortHash())
			continue
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// buildReleasePlan sorts the commits into the pull requests that introduced
// them and the commits that have none, then resolves who merged each pull
// request.
func buildReleasePlan(project project.Project, provider provider, commits []managementsystem.Commit, sourceBranch string, targetBranch string, newBranchName string, shortSourceSHA string, conductor string, backport bool) (ReleasePlan, error) {
	plan := ReleasePlan{
		SourceBranch:             sourceBranch,
		TargetBranch:             targetBranch,
		NewBranchName:            newBranchName,
		ShortSourceSHA:           shortSourceSHA,
		Conductor:                conductor,
		IncludeMergebackReminder: !backport,
	}

	for _, commit := range commits {
		pullRequest, found, err := pullRequestForCommit(project, provider, commit)
		if err != nil {
			return ReleasePlan{}, err
		}
		if !found {
			plan.OrphanCommits = append(plan.OrphanCommits, commit)
			continue
		}
		if !plan.containsPullRequest(pullRequest.Number) {
			plan.PullRequests = append(plan.PullRequests, pullRequest)
		}
	}

	log.Logger.Infof("Found %d pull requests", len(plan.PullRequests))
	log.Logger.Infof("Found %d commits not in a pull request", len(plan.OrphanCommits))

	sort.Slice(plan.PullRequests, func(i, j int) bool {
		return plan.PullRequests[i].Number < plan.PullRequests[j].Number
	})
	// Ties on the author date keep the log order of the delta.
	sort.SliceStable(plan.OrphanCommits, func(i, j int) bool {
		return plan.OrphanCommits[i].AuthorDate.Before(plan.OrphanCommits[j].AuthorDate)
	})

	for i := range plan.PullRequests {
		merger, err := provider.GetMergerOfPullRequest(project.Owner, project.Name, plan.PullRequests[i])
		if err != nil {
			return ReleasePlan{}, err
		}
		plan.PullRequests[i].MergerLogin = merger
	}

	return plan, nil
}

func (plan ReleasePlan) containsPullRequest(number int) bool {
	for _, pullRequest := range plan.PullRequests {
		if pullRequest.Number == number {
			return true
		}
	}
	return false
}

// pullRequestForCommit resolves the pull request that introduced the commit.
// When several pull requests contain the commit the earliest one wins.
func pullRequestForCommit(project project.Project, provider provider, commit managementsystem.Commit) (managementsystem.PullRequest, bool, error) {
	pullRequests, err := provider.GetPullRequestsForCommit(project.Owner, project.Name, commit.Hash)
	if err != nil {
		return managementsystem.PullRequest{}, false, err
	}
	if len(pullRequests) == 0 {
		return managementsystem.PullRequest{}, false, nil
	}

	earliest := pullRequests[0]
	for _, pullRequest := range pullRequests[1:] {
		if pullRequest.Number < earliest.Number {
			earliest = pullRequest
		}
	}
	return earliest, true, nil
}

func renderDescription(plan ReleasePlan) string {
	body := []string{}
	body = append(body, "Merging "+plan.ShortSourceSHA+" into "+plan.TargetBranch)

	body = append(body, "")
	body = append(body, "Conductor for this PR is @"+plan.Conductor)

	if len(plan.PullRequests) > 0 {
		body = append(body, "")
		body = append(body, "Contains the following pull requests:")
		for _, pullRequest := range plan.PullRequests {
			body = append(body, fmt.Sprintf("- #%d - %s (@%s)", pullRequest.Number, pullRequest.Title, pullRequest.MergerLogin))
		}
	}

	if len(plan.OrphanCommits) > 0 {
		body = append(body, "")
		body = append(body, "Contains the following commits not from a pull request:")
		for _, commit := range plan.OrphanCommits {
			authorDescription := ""
			if commit.AuthorLogin != "" {
				authorDescription = " (@" + commit.AuthorLogin + ")"
			}
			body = append(body, "- "+commit.Hash+" - "+truncatedSummary(commit)+authorDescription)
		}
	}

	body = append(body, "")
	body = append(body, "Please review the following:")
	body = append(body, " - [ ] The CHANGELOG displays the correct version and date.")
	body = append(body, " - [ ] The CHANGELOG includes all relevant, user-facing changes since the last release.")
	body = append(body, " - [ ] There are no unexpected commits being merged into the "+plan.TargetBranch+" branch.")
	body = append(body, " - [ ] The docs team is aware of any documentation changes that need to be released.")
	if plan.IncludeMergebackReminder {
		body = append(body, " - [ ] The mergeback PR is merged back into "+plan.SourceBranch+" after this PR is merged.")
	}

	return strings.Join(body, "\n")
}

// truncatedSummary is the first line of the commit message, cut down so it
// displays nicely. Lengths are measured in characters, not bytes.
func truncatedSummary(commit managementsystem.Commit) string {
	summary := strings.SplitN(commit.Message, "\n", 2)[0]
	runes := []rune(summary)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return summary
}
