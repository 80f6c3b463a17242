package repositorymanagementsystem_test

import (
	"testing"

	"github.com/coveooss/ferry/lib/ferry/project"
	managementsystem "github.com/coveooss/ferry/lib/ferry/repositorymanagementsystem"
	"github.com/coveooss/ferry/lib/ferry/vcs"
)

func TestNewGitHubPointsAtTheHostedRepository(t *testing.T) {
	gh := managementsystem.NewGitHub(vcs.TokenAuth{Token: "watev"}, project.Project{Owner: "github", Name: "codeql-action"})

	if gh.GetURL() != "https://github.com/github/codeql-action" {
		t.Errorf("GetURL = %q, expected the repository page", gh.GetURL())
	}
}
