package pathkit

import (
	"github.com/google/uuid"
)

// NamespacePathIdentity is the UUID namespace used by Identity. It is derived
// from "pathkit/path-identity/v1" with the standard URL namespace.
var NamespacePathIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pathkit/path-identity/v1"))

// Identity returns a deterministic UUID v5 for the normalized form of p,
// rendered with forward slashes so the value does not depend on the host.
//
// Examples:
//   - "a/./b/../c" and "a/c" share an identity
//   - "C:\\data" and "C:/data" share an identity
//   - "/a" and "a" do not
func (p Path) Identity() uuid.UUID {
	return uuid.NewSHA1(NamespacePathIdentity, []byte(p.Normalized().ToSlash()))
}
