// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information reported by the splaytree
// utilities.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// semanticBuildAlphabet defines the allowed characters for the build
	// portion of a semantic version string.
	semanticBuildAlphabet = semanticAlphabet + "."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/splaytree/internal/version.PreRelease=foo"'
	// It MUST only contain characters from semanticAlphabet.
	PreRelease = "pre"

	// BuildMetadata may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/splaytree/internal/version.BuildMetadata=foo"'
	// It MUST only contain characters from semanticBuildAlphabet.
	BuildMetadata = "dev"
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	return format(PreRelease, BuildMetadata)
}

// format builds the version string with the passed pre-release and build
// metadata, dropping any characters they are not permitted to carry.
func format(preRelease, build string) string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	// The hyphen and plus separators are added here and must not be part
	// of the overrides.
	if preRelease = normalize(preRelease, semanticAlphabet); preRelease != "" {
		version += "-" + preRelease
	}
	if build = normalize(build, semanticBuildAlphabet); build != "" {
		version += "+" + build
	}

	return version
}

// normalize returns the passed string stripped of all characters which are
// not in alphabet.
func normalize(str, alphabet string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(alphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
