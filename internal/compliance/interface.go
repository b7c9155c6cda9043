// Package compliance derives the configuration coverage score and assembles
// the report summary shown on the dashboard.
package compliance

import "context"

//go:generate mockgen -package mockcompliance -source=interface.go -destination=mock/mockcompliance.go *
type Reporter interface {
	// Summary returns the compliance score, the latest scan summary, quick
	// stats and the enabled modules.
	Summary(ctx context.Context) (*Summary, error)
}
