package targetver

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BuildEnv carries the host build environment facts consulted during
// target-version detection. All fields are optional; a zero BuildEnv simply
// pushes resolution down to the executing environment's own version.
type BuildEnv struct {
	// Properties are host build properties. The resolver consults the
	// compiler.source and compiler.release keys.
	Properties map[string]string
	// CompilerSource and CompilerRelease are the compiler build step's own
	// source/release settings.
	CompilerSource  string
	CompilerRelease string
	// RuntimeVersion is the host-reported toolchain version. When blank the
	// version of the Go runtime executing this process is used.
	RuntimeVersion string
}

// Candidates assembles the standard priority list: the explicit
// target_version option, the compiler.source and compiler.release build
// properties, the compiler step's source and release settings, and finally
// the executing environment's version, which is always present.
func Candidates(explicit string, env BuildEnv) []Candidate {
	return []Candidate{
		{Name: "target_version", Get: func() string { return explicit }},
		{Name: "compiler.source property", Get: func() string { return env.Properties["compiler.source"] }},
		{Name: "compiler.release property", Get: func() string { return env.Properties["compiler.release"] }},
		{Name: "compiler source setting", Get: func() string { return env.CompilerSource }},
		{Name: "compiler release setting", Get: func() string { return env.CompilerRelease }},
		{Name: "runtime", Get: func() string { return runtimeFallback(env.RuntimeVersion) }},
	}
}

// runtimeFallback normalizes a toolchain version string ("go1.24.5",
// "1.24.5", "17.0.2") down to the major.minor form used as a language-level
// target. It never returns blank.
func runtimeFallback(reported string) string {
	raw := strings.TrimSpace(reported)
	if raw == "" {
		raw = runtime.Version()
	}
	raw = strings.TrimPrefix(raw, "go")

	v, err := semver.NewVersion(raw)
	if err != nil {
		// Development toolchains report versions like "devel +abcdef"; keep
		// the raw string rather than failing, the resolver must not error.
		return raw
	}
	if v.Major() == 1 {
		return strconv.FormatUint(v.Major(), 10) + "." + strconv.FormatUint(v.Minor(), 10)
	}
	return strconv.FormatUint(v.Major(), 10)
}

// Normalize reports the canonical form of an explicitly configured version
// for diagnostics, plus whether it parsed as a version at all. An
// unparsable explicit value is passed through opaquely rather than rejected,
// but is worth a warning upstream.
func Normalize(value string) (string, bool) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(value), "go"))
	if err != nil {
		return value, false
	}
	return v.String(), true
}
