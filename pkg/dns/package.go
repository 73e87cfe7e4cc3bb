// Package dns converges the live DNS records of a cloud provider towards a
// desired record set, using only the four record primitives every supported
// provider exposes.
package dns

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Zone identifies a provider's container for all records of one domain. The
// ID is a provider-specific opaque handle, resolved per call and never
// persisted.
type Zone struct {
	ID     string
	Domain string
}

// RecordHandle is a provider-specific identifier carrying whatever the
// provider needs to delete a live record precisely.
type RecordHandle any

// ExtendedRecord is a provider's live record together with enough metadata to
// render it back into a Record and to delete it. Hostnames are relative to
// the zone domain (empty string for the apex). Instances are constructed
// fresh on every ListRecords call and owned by a single reconciliation pass.
type ExtendedRecord struct {
	// Handle is set on records returned by ListRecords and ignored by
	// CreateRecord.
	Handle     RecordHandle
	Hostname   string
	Kind       RecordKind
	Targets    []string
	TTLSeconds int
	Affinity   AffinityGroup
}

// RecordsClient performs the primitive record operations of one DNS provider.
// All operations may block on network I/O; timeouts are the implementation's
// responsibility.
//
//counterfeiter:generate . RecordsClient
type RecordsClient interface {
	// ResolveZone returns the zone exactly matching domain. Fails with
	// ZoneNotFoundError when no zone matches and with TruncatedListingError
	// when the provider's zone listing does not fit in a single page:
	// operating on a partial zone list risks destructive mistakes.
	ResolveZone(ctx context.Context, domain string) (Zone, error)

	// ListRecords fetches every record in the zone, paginating until
	// exhaustion. No partial results: any page failure aborts the listing.
	ListRecords(ctx context.Context, zone Zone) ([]ExtendedRecord, error)

	// CreateRecord creates one record in the zone. A non-empty affinity must
	// be encoded with the provider's native geo-routing primitive and a set
	// identifier unique per affinity group.
	CreateRecord(ctx context.Context, zone Zone, record ExtendedRecord) error

	// DeleteRecord deletes the record identified by handle. Deleting an
	// already-gone record is reported as the provider reports it; the
	// Route 53 implementation treats it as success.
	DeleteRecord(ctx context.Context, zone Zone, handle RecordHandle) error
}

// Provider is the public surface of one DNS provider: reading the live record
// set and converging it towards a desired one.
type Provider interface {
	// Read returns the current record set of domain.
	Read(ctx context.Context, domain string) (RecordSet, error)

	// Converge makes the live state of domain match desired, metadata first,
	// then routes. It returns the operation log; on failure the log covers
	// the hostnames converged before the abort.
	Converge(ctx context.Context, domain string, desired RecordSet) (string, error)

	// ConvergeRoute converges the route records (A, CNAME) of a single
	// hostname. A ttlSeconds of 0 selects the provider default.
	ConvergeRoute(ctx context.Context, domain, hostname string, desired Record, ttlSeconds int) (string, error)

	// ConvergeMetadata converges the metadata records (TXT) of a single
	// hostname. A ttlSeconds of 0 selects the provider default.
	ConvergeMetadata(ctx context.Context, domain, hostname string, desired Record, ttlSeconds int) (string, error)
}
