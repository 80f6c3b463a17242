package npm

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/blang/semver"
	"github.com/coveooss/ferry/lib/ferry/log"
	"github.com/coveooss/ferry/lib/ferry/os"
)

const packageJSONFileName = "package.json"

type packageJSON struct {
	Version string `json:"version"`
}

type Manager struct {
}

// CurrentVersion reads the version field of the package manifest in dir.
func (manager Manager) CurrentVersion(dir string) (string, error) {
	packageJSONBuffer, err := ioutil.ReadFile(dir + "/" + packageJSONFileName)
	if err != nil {
		return "", fmt.Errorf("Could not read %s: %s", packageJSONFileName, err)
	}

	var parsedPackageJSON packageJSON
	if err := json.Unmarshal(packageJSONBuffer, &parsedPackageJSON); err != nil {
		return "", fmt.Errorf("Could not parse %s: %s", packageJSONFileName, err)
	}
	if parsedPackageJSON.Version == "" {
		return "", fmt.Errorf("No version field in %s", packageJSONFileName)
	}

	return parsedPackageJSON.Version, nil
}

// WriteVersion rewrites the manifest and its lockfile to the given version
// without creating a commit or a tag.
func (manager Manager) WriteVersion(dir string, version string) error {
	log.Logger.Infof("Running npm version %s", version)
	_, err := os.Execute(dir, "npm", "version", version, "--no-git-tag-version")
	return err
}

// BackportVersion maps a version onto the 1.x line, so 2.3.1 becomes 1.3.1.
func (manager Manager) BackportVersion(version string) (string, error) {
	parsed, err := semver.Parse(version)
	if err != nil {
		return "", fmt.Errorf("Could not parse version '%s': %s", version, err)
	}

	parsed.Major = 1
	return parsed.String(), nil
}
