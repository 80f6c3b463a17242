package changelog

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/coveooss/ferry/lib/ferry/log"
)

const changelogFileName = "CHANGELOG.md"

const unreleasedSentinel = "[UNRELEASED]"

const emptyChangelog = `# Changelog

## [UNRELEASED]

No user facing changes.

`

type Store struct {
}

// Release stamps the unreleased section of the changelog in dir with the
// version and date. Only the first occurrence of the sentinel is replaced, so
// older sections that happen to mention it stay untouched. A missing
// changelog is seeded with an empty one first.
func (store Store) Release(dir string, version string, date time.Time) error {
	path := dir + "/" + changelogFileName

	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		log.Logger.Warnf("%s does not exist, starting from an empty changelog", changelogFileName)
		content = []byte(emptyChangelog)
	} else if err != nil {
		return fmt.Errorf("Could not read %s: %s", changelogFileName, err)
	}

	heading := version + " - " + date.Format("02 Jan 2006")
	updated := strings.Replace(string(content), unreleasedSentinel, heading, 1)

	return ioutil.WriteFile(path, []byte(updated), 0644)
}

// RewriteMajorHeadings migrates the release headings from the major line of
// fromVersion to the major line of toVersion, so "## 2.3.1 - ..." becomes
// "## 1.3.1 - ...". Lines that are not release headings are left alone.
func (store Store) RewriteMajorHeadings(dir string, fromVersion string, toVersion string) error {
	from, err := semver.Parse(fromVersion)
	if err != nil {
		return fmt.Errorf("Could not parse version '%s': %s", fromVersion, err)
	}
	to, err := semver.Parse(toVersion)
	if err != nil {
		return fmt.Errorf("Could not parse version '%s': %s", toVersion, err)
	}

	path := dir + "/" + changelogFileName
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Could not read %s: %s", changelogFileName, err)
	}

	fromHeading := fmt.Sprintf("## %d.", from.Major)
	toHeading := fmt.Sprintf("## %d.", to.Major)

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, fromHeading) {
			lines[i] = toHeading + strings.TrimPrefix(line, fromHeading)
		}
	}

	return ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
