// Package versioning is the compatibility boundary between legacy
// projects and the quantity resolution engine. The mapping from project
// creation date to logic version is total and deterministic, and is
// derived only from the immutable creation timestamp: historical
// projects must never be silently reinterpreted under new physics. New
// resolver behavior is added by introducing a new version behind this
// gate, never by moving the cutover.
package versioning

import "time"

// Logic versions.
const (
	// VersionLegacy marks projects frozen before the engine existed.
	// Their stored quantities are authoritative and unresolved.
	VersionLegacy = 1

	// VersionResolver marks projects bound to the resolution engine.
	VersionResolver = 2
)

// Cutover is the fixed date at which newly created projects switch to
// resolver-enforced quantity logic.
var Cutover = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// LogicVersion maps a project's creation timestamp to its quantity
// logic version. Pure function of the timestamp.
func LogicVersion(createdAt time.Time) int {
	if createdAt.Before(Cutover) {
		return VersionLegacy
	}
	return VersionResolver
}

// ShouldUseResolver decides whether the engine may be invoked for a
// project. An explicit stored version wins over the date mapping; this
// is how individual legacy projects can be opted in deliberately.
func ShouldUseResolver(createdAt time.Time, explicitVersion *int) bool {
	if explicitVersion != nil {
		return *explicitVersion >= VersionResolver
	}
	return LogicVersion(createdAt) >= VersionResolver
}
