package db

import (
	"testing"
	"time"

	"material-quantity/core/versioning"
)

func TestProjectUsesResolver(t *testing.T) {
	legacy := Project{CreatedAt: versioning.Cutover.Add(-time.Hour)}
	if legacy.UsesResolver() {
		t.Error("legacy project must not use the resolver")
	}

	modern := Project{CreatedAt: versioning.Cutover.Add(time.Hour)}
	if !modern.UsesResolver() {
		t.Error("modern project must use the resolver")
	}

	v2 := versioning.VersionResolver
	optedIn := Project{CreatedAt: versioning.Cutover.Add(-time.Hour), ExplicitVersion: &v2}
	if !optedIn.UsesResolver() {
		t.Error("explicitly pinned legacy project must use the resolver")
	}
}
