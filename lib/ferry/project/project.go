package project

import (
	"fmt"
	"strings"
)

type Project struct {
	Owner string
	Name  string
}

// Parse splits a repository identifier in the owner/name form, for example
// github/codeql-action.
func Parse(nwo string) (Project, error) {
	parts := strings.Split(nwo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Project{}, fmt.Errorf("Invalid repository '%s', expected the owner/name form", nwo)
	}

	return Project{
		Owner: parts[0],
		Name:  parts[1],
	}, nil
}
