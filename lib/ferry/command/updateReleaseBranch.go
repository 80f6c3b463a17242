package command

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/coveooss/ferry/lib/ferry"
	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/project"
)

const (
	pullRequestTitle      = "Merge {{.source}} into {{.target}}"
	forwardCommitMessage  = "Update changelog for v{{.version}}"
	backportCommitMessage = "Update version and changelog for v{{.version}}"
)

func UpdateReleaseBranchCommand(project project.Project, sourceControl sourceControl, provider provider, versions versionStore, changelogs changelogStore, args map[string]string) error {
	sourceBranch, ok := args["sourceBranch"]
	if !ok {
		return errors.New("Missing argument 'sourceBranch'")
	}
	toBranch, ok := args["targetBranch"]
	if !ok {
		return errors.New("Missing argument 'targetBranch'")
	}
	conductor, ok := args["conductor"]
	if !ok {
		return errors.New("Missing argument 'conductor'")
	}
	backport, _ := strconv.ParseBool(args["backport"])

	return updateReleaseBranch(project, sourceControl, provider, versions, changelogs, sourceBranch, toBranch, conductor, backport)
}

func updateReleaseBranch(project project.Project, sourceControl sourceControl, provider provider, versions versionStore, changelogs changelogStore, sourceBranch string, targetBranch string, conductor string, backport bool) error {
	sourceVersion, err := versions.CurrentVersion(sourceControl.WorkingPath())
	if err != nil {
		return err
	}

	version := sourceVersion
	if backport {
		if version, err = versions.BackportVersion(sourceVersion); err != nil {
			return err
		}
	}

	log.Logger.Infof("Considering difference between %s and %s", sourceBranch, targetBranch)

	shortSourceSHA, err := sourceControl.ShortRemoteRev(sourceBranch)
	if err != nil {
		return err
	}
	log.Logger.Infof("Current head of %s is %s", sourceBranch, shortSourceSHA)

	commits, err := commitDifference(project, sourceControl, provider, sourceBranch, targetBranch)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		log.Logger.Infof("No commits to merge from %s to %s", sourceBranch, targetBranch)
		return nil
	}

	// The branch name is derived from the version and the SHA of the branch
	// being merged from, so when it already exists this combination has
	// already been handled by an earlier run.
	newBranchName := "update-v" + version + "-" + shortSourceSHA
	log.Logger.Infof("Branch name is %s", newBranchName)

	exists, err := sourceControl.RemoteBranchExists(newBranchName)
	if err != nil {
		return err
	}
	if exists {
		log.Logger.Infof("Branch %s already exists. Nothing to do.", newBranchName)
		return nil
	}

	log.Logger.Infof("Creating branch %s", newBranchName)
	if _, err := sourceControl.CheckoutNewBranch(newBranchName, sourceBranch); err != nil {
		return err
	}

	if backport {
		if err := applyBackportChanges(sourceControl, versions, changelogs, sourceVersion, version); err != nil {
			return err
		}
	} else {
		log.Logger.Info("Updating changelog")
		if err := changelogs.Release(sourceControl.WorkingPath(), version, time.Now()); err != nil {
			return err
		}
		if _, err := sourceControl.Add("CHANGELOG.md"); err != nil {
			return err
		}
		message := ferry.Tprintf(forwardCommitMessage, map[string]interface{}{"version": version})
		if _, err := sourceControl.Commit(message); err != nil {
			return err
		}
	}

	if os.Getenv("DRY_RUN") == "1" {
		log.Logger.Info("Running in DryRun mode, not doing the pull request nor pushing the changes")
		return nil
	}

	if _, err := sourceControl.Push(newBranchName); err != nil {
		return err
	}

	plan, err := buildReleasePlan(project, provider, commits, sourceBranch, targetBranch, newBranchName, shortSourceSHA, conductor, backport)
	if err != nil {
		return err
	}

	return openPullRequest(project, provider, plan)
}

// applyBackportChanges replaces the version and changelog commit at the tip
// of the source branch with its backported equivalent, as a single amended
// commit.
func applyBackportChanges(sourceControl sourceControl, versions versionStore, changelogs changelogStore, fromVersion string, toVersion string) error {
	log.Logger.Infof("Setting version number to %s", toVersion)
	if err := versions.WriteVersion(sourceControl.WorkingPath(), toVersion); err != nil {
		return err
	}
	if _, err := sourceControl.SoftResetOne(); err != nil {
		return err
	}
	if _, err := sourceControl.Add("package.json", "package-lock.json"); err != nil {
		return err
	}

	log.Logger.Info("Migrating changelog notes from v2 to v1")
	if err := changelogs.RewriteMajorHeadings(sourceControl.WorkingPath(), fromVersion, toVersion); err != nil {
		return err
	}
	if _, err := sourceControl.Add("CHANGELOG.md"); err != nil {
		return err
	}

	message := ferry.Tprintf(backportCommitMessage, map[string]interface{}{"version": toVersion})
	if _, err := sourceControl.AmendCommit(message); err != nil {
		return err
	}
	return nil
}

func openPullRequest(project project.Project, provider provider, plan ReleasePlan) error {
	title := ferry.Tprintf(pullRequestTitle, map[string]interface{}{"source": plan.SourceBranch, "target": plan.TargetBranch})
	description := renderDescription(plan)

	pullRequest, err := provider.CreatePullRequest(plan.NewBranchName, plan.TargetBranch, project.Owner, project.Name, title, description)
	if err != nil {
		return err
	}

	if err := provider.AssignPullRequest(project.Owner, project.Name, pullRequest.Number, plan.Conductor); err != nil {
		return err
	}
	log.Logger.Infof("Assigned PR to %s", plan.Conductor)

	return nil
}
