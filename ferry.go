package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/coveooss/ferry/lib/ferry/changelog"
	"github.com/coveooss/ferry/lib/ferry/command"
	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/project"
	"github.com/coveooss/ferry/lib/ferry/repositorymanagementsystem"
	"github.com/coveooss/ferry/lib/ferry/vcs"
	"github.com/coveooss/ferry/lib/ferry/versionManager/npm"
	"github.com/sirupsen/logrus"
)

var (
	githubToken   = flag.String("github-token", "", "GitHub token, typically from GitHub Actions")
	repositoryNwo = flag.String("repository-nwo", "", "The repository in the owner/name form, for example github/codeql-action")
	sourceBranch  = flag.String("source-branch", "", "The branch being merged from")
	targetBranch  = flag.String("target-branch", "", "The branch being merged into")
	conductor     = flag.String("conductor", "", "The GitHub handle of the person conducting the release")
	backport      = flag.Bool("perform-v2-to-v1-backport", false, "Set if this release is a backport from v2 to v1")
	verbose       = flag.Bool("verbose", false, "set to true to show more logs")
)

func main() {
	flag.Parse()

	if *verbose {
		log.Logger.Info("Log level set to verbose")
		log.Logger.SetLevel(logrus.TraceLevel)
	} else {
		log.Logger.SetLevel(logrus.InfoLevel)
	}

	log.Logger.SetOutput(os.Stdout)
	log.Logger.SetReportCaller(true)

	required := []struct {
		name  string
		value string
	}{
		{"github-token", *githubToken},
		{"repository-nwo", *repositoryNwo},
		{"source-branch", *sourceBranch},
		{"target-branch", *targetBranch},
		{"conductor", *conductor},
	}
	for _, requiredFlag := range required {
		if requiredFlag.value == "" {
			log.Logger.Errorf("Missing required flag --%s", requiredFlag.name)
			flag.PrintDefaults()
			os.Exit(1)
		}
	}

	proj, err := project.Parse(*repositoryNwo)
	if err != nil {
		log.Logger.Error(fmt.Sprintf("Error parsing --repository-nwo: %s", err))
		os.Exit(1)
	}

	if os.Getenv("DRY_RUN") == "1" {
		log.Logger.Info("Running in DryRun mode, not doing the pull request nor pushing the changes")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		log.Logger.Error(fmt.Sprintf("Error resolving the working directory: %s", err))
		os.Exit(1)
	}

	auth := vcs.TokenAuth{Token: *githubToken}

	var sourceControl vcs.SourceControl = vcs.NewGit(workingDir)
	provider := repositorymanagementsystem.NewGitHub(auth, proj)
	log.Logger.Info(fmt.Sprintf("Project: %s", provider.GetURL()))

	args := map[string]string{
		"sourceBranch": *sourceBranch,
		"targetBranch": *targetBranch,
		"conductor":    *conductor,
		"backport":     strconv.FormatBool(*backport),
	}

	if err := command.UpdateReleaseBranchCommand(proj, sourceControl, provider, npm.Manager{}, changelog.Store{}, args); err != nil {
		log.Logger.Error(fmt.Sprintf("Command failed: %s", err))
		os.Exit(1)
	}
}
