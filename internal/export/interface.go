// Package export renders the findings report in the supported download
// formats.
package export

import "context"

//go:generate mockgen -package mockexport -source=interface.go -destination=mock/mockexport.go *
type Exporter interface {
	// Export renders every finding in the given format. Unknown formats fail
	// with serrors.ErrBadRequest and pdf fails with serrors.ErrNotImplemented.
	Export(ctx context.Context, format Format) (*Document, error)
}
