package config

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// ConfigVersion is the schema version written into config files. Bump the
// major version when a key is renamed or removed.
const ConfigVersion = "v1.0.0"

// IsCompatibleVersion reports whether a file declaring version can be decoded
// by a build supporting schema. Keys are only ever added within a major
// version, so any file sharing the major version is readable.
func IsCompatibleVersion(version, schema string) (bool, error) {
	for _, v := range [...]string{version, schema} {
		if !semver.IsValid(v) {
			return false, fmt.Errorf("config version %q is not a semantic version", v)
		}
	}
	return semver.Compare(semver.Major(version), semver.Major(schema)) == 0, nil
}
