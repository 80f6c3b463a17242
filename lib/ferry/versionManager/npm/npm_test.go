package npm_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coveooss/ferry/lib/ferry/versionManager/npm"
)

func createManifest(t *testing.T, content string) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "ferry-npm-test-")
	if err != nil {
		t.Fatalf("Could not create temp dir: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	if err := ioutil.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Could not write package.json: %s", err)
	}
	return dir
}

func TestCurrentVersionReadsThePackageManifest(t *testing.T) {
	dir := createManifest(t, `{"name": "codeql", "version": "2.3.1"}`)

	version, err := npm.Manager{}.CurrentVersion(dir)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %s", err)
	}
	if version != "2.3.1" {
		t.Errorf("CurrentVersion = %q, expected '2.3.1'", version)
	}
}

func TestCurrentVersionFailsWithoutManifest(t *testing.T) {
	dir, err := ioutil.TempDir("", "ferry-npm-test-")
	if err != nil {
		t.Fatalf("Could not create temp dir: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	if _, err := (npm.Manager{}).CurrentVersion(dir); err == nil {
		t.Error("CurrentVersion should fail when package.json is missing")
	}
}

func TestCurrentVersionFailsWithoutVersionField(t *testing.T) {
	dir := createManifest(t, `{"name": "codeql"}`)

	_, err := npm.Manager{}.CurrentVersion(dir)
	if err == nil {
		t.Fatal("CurrentVersion should fail when the version field is missing")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("Error %q does not mention the version field", err.Error())
	}
}

func TestBackportVersionMapsOntoTheOneLine(t *testing.T) {
	backported, err := npm.Manager{}.BackportVersion("2.3.1")
	if err != nil {
		t.Fatalf("BackportVersion failed: %s", err)
	}
	if backported != "1.3.1" {
		t.Errorf("BackportVersion = %q, expected '1.3.1'", backported)
	}
}

func TestBackportVersionRejectsInvalidVersions(t *testing.T) {
	if _, err := (npm.Manager{}).BackportVersion("not-a-version"); err == nil {
		t.Error("BackportVersion should fail on an unparsable version")
	}
}
