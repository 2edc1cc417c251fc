package app

import "fmt"

// Version identifies a released revision of the in-application API, encoded
// the way RENDERDOC_GetAPI expects it: major*10000 + minor*100 + patch. The
// set of versions is closed; it grows only when the upstream ABI does.
//
// Capabilities are strictly additive across versions, so a table negotiated
// at version A can serve any request for a version B <= A.
type Version uint32

const (
	V1_0_0 Version = 10000
	V1_0_1 Version = 10001
	V1_0_2 Version = 10002
	V1_1_0 Version = 10100
	V1_1_1 Version = 10101
	V1_1_2 Version = 10102
	V1_2_0 Version = 10200
	V1_3_0 Version = 10300
	V1_4_0 Version = 10400
	V1_4_1 Version = 10401
	V1_4_2 Version = 10402
	V1_5_0 Version = 10500
	V1_6_0 Version = 10600
)

// Satisfies reports whether a table negotiated at v can serve every
// capability introduced at or before min.
func (v Version) Satisfies(min Version) bool {
	return v >= min
}

func versionOf(major, minor, patch int) Version {
	return Version(major*10000 + minor*100 + patch)
}

// Major returns the major component of the version.
func (v Version) Major() int { return int(v / 10000) }

// Minor returns the minor component of the version.
func (v Version) Minor() int { return int(v/100) % 100 }

// Patch returns the patch component of the version.
func (v Version) Patch() int { return int(v) % 100 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
