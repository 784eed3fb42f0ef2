package thoth

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/graphql"
)

// DefaultVersion is the API version used when none is configured
const DefaultVersion = "0.9.0"

type binding struct {
	schema func() *schema
	bind   func(*base) API
}

var bindings = map[string]binding{
	"0.4.2": {schema042, func(b *base) API { return newThoth042(b) }},
	"0.5.0": {schema050, func(b *base) API { return newThoth050(b) }},
	"0.6.0": {schema060, func(b *base) API { return newThoth060(b) }},
	"0.8.0": {schema080, func(b *base) API { return newThoth080(b) }},
	"0.8.4": {schema084, func(b *base) API { return newThoth084(b) }},
	"0.9.0": {schema090, func(b *base) API { return newThoth090(b) }},
}

// SupportedVersions returns every bound API version in ascending order
func SupportedVersions() []string {
	versions := make(semver.Versions, 0, len(bindings))
	for v := range bindings {
		versions = append(versions, semver.MustParse(v))
	}
	semver.Sort(versions)

	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.String()
	}
	return out
}

// NormalizeVersion accepts "v0.6.0", "0.6.0" or the compact "060" form and
// returns the dotted version.
func NormalizeVersion(version string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if len(v) == 3 && !strings.Contains(v, ".") {
		v = fmt.Sprintf("%c.%c.%c", v[0], v[1], v[2])
	}
	parsed, err := semver.Parse(v)
	if err != nil {
		return "", &VersionError{Version: version, Supported: SupportedVersions()}
	}
	return parsed.String(), nil
}

// IsSupported reports whether version is bound
func IsSupported(version string) bool {
	v, err := NormalizeVersion(version)
	if err != nil {
		return false
	}
	_, ok := bindings[v]
	return ok
}

// NewAPI binds the operation table of version to exec
func NewAPI(version string, exec *graphql.Executor, logger zerolog.Logger) (API, error) {
	v, err := NormalizeVersion(version)
	if err != nil {
		return nil, err
	}
	bind, ok := bindings[v]
	if !ok {
		return nil, &VersionError{Version: version, Supported: SupportedVersions()}
	}
	return bind.bind(newBase(bind.schema(), exec, logger)), nil
}
