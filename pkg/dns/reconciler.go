package dns

import (
	"context"
	"net/netip"
	"slices"
	"sort"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultTTLSeconds is the TTL applied to created records when the caller
// does not specify one.
const DefaultTTLSeconds = 30

// Reconciler converges the live records of one provider towards a desired
// record set. The algorithm is written once against RecordsClient; the
// provider adapters only translate the four primitives. A Reconciler holds no
// state across calls: live records are re-read on every pass and the provider
// is the sole source of truth.
type Reconciler struct {
	client RecordsClient
	logger logr.Logger
}

var _ Provider = (*Reconciler)(nil)

func NewReconciler(client RecordsClient, logger logr.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		logger: logger,
	}
}

// Read returns the current record set of domain. A live A record with an
// unparsable IP literal fails the read with RecordParseError.
func (r *Reconciler) Read(ctx context.Context, domain string) (RecordSet, error) {
	zone, err := r.client.ResolveZone(ctx, domain)
	if err != nil {
		return RecordSet{}, errors.WithStack(err)
	}

	records, err := r.client.ListRecords(ctx, zone)
	if err != nil {
		return RecordSet{}, errors.WithStack(err)
	}

	aRecords := map[string]map[netip.Addr]AffinityGroup{}
	builder := NewRecordSetBuilder()
	for _, record := range records {
		switch record.Kind {
		case RecordKindA:
			addrs, err := parseAddrs(record.Targets, zone.Domain, record.Hostname)
			if err != nil {
				return RecordSet{}, errors.WithStack(err)
			}
			entry, ok := aRecords[record.Hostname]
			if !ok {
				entry = map[netip.Addr]AffinityGroup{}
				aRecords[record.Hostname] = entry
			}
			for _, addr := range addrs {
				entry[addr] = record.Affinity
			}
		case RecordKindCNAME:
			if len(record.Targets) == 1 {
				builder.CNAME(record.Hostname, record.Targets[0])
			}
		case RecordKindTXT:
			if len(record.Targets) == 1 {
				builder.TXT(record.Hostname, record.Targets[0])
			}
		default:
			// NS, SOA, MX, ... are not part of the record model.
		}
	}

	for hostname, addresses := range aRecords {
		builder.AG(hostname, addresses)
	}

	return builder.Build(), nil
}

// Converge makes the live state of domain match desired: the zone is resolved
// once, then every metadata entry and every route entry is converged in turn.
// The first failing hostname aborts the call; the returned log covers the
// operations performed up to that point.
func (r *Reconciler) Converge(ctx context.Context, domain string, desired RecordSet) (string, error) {
	log := NewOperationLog()

	zone, err := r.client.ResolveZone(ctx, domain)
	if err != nil {
		return log.String(), errors.WithStack(err)
	}

	for _, entry := range desired.Metadata() {
		if err := r.convergeMetadata(ctx, zone, entry.Hostname, entry.Record, DefaultTTLSeconds, log); err != nil {
			return log.String(), errors.WithStack(err)
		}
	}
	for _, entry := range desired.Routes() {
		if err := r.convergeRoute(ctx, zone, entry.Hostname, entry.Record, DefaultTTLSeconds, log); err != nil {
			return log.String(), errors.WithStack(err)
		}
	}

	return log.String(), nil
}

// ConvergeRoute converges the route records (A, CNAME) of a single hostname.
func (r *Reconciler) ConvergeRoute(ctx context.Context, domain, hostname string, desired Record, ttlSeconds int) (string, error) {
	log := NewOperationLog()
	zone, err := r.client.ResolveZone(ctx, domain)
	if err != nil {
		return log.String(), errors.WithStack(err)
	}
	if err := r.convergeRoute(ctx, zone, hostname, desired, ttlSeconds, log); err != nil {
		return log.String(), errors.WithStack(err)
	}
	return log.String(), nil
}

// ConvergeMetadata converges the metadata records (TXT) of a single hostname.
// MX and SRV records at the hostname are left untouched.
func (r *Reconciler) ConvergeMetadata(ctx context.Context, domain, hostname string, desired Record, ttlSeconds int) (string, error) {
	log := NewOperationLog()
	zone, err := r.client.ResolveZone(ctx, domain)
	if err != nil {
		return log.String(), errors.WithStack(err)
	}
	if err := r.convergeMetadata(ctx, zone, hostname, desired, ttlSeconds, log); err != nil {
		return log.String(), errors.WithStack(err)
	}
	return log.String(), nil
}

func (r *Reconciler) convergeRoute(ctx context.Context, zone Zone, hostname string, desired Record, ttlSeconds int, log *OperationLog) error {
	records, err := r.client.ListRecords(ctx, zone)
	if err != nil {
		return errors.WithStack(err)
	}
	existing := lo.Filter(records, func(record ExtendedRecord, _ int) bool {
		return record.Hostname == hostname
	})

	switch desired.Kind() {
	case RecordKindA:
		return r.convergeARecords(ctx, zone, hostname, existing, desired.Addresses(), effectiveTTL(ttlSeconds), log)
	case RecordKindCNAME:
		return r.convergeCNAME(ctx, zone, hostname, existing, desired.Target(), effectiveTTL(ttlSeconds), log)
	case RecordKindNone:
		for _, record := range existing {
			if record.Kind != RecordKindA && record.Kind != RecordKindCNAME {
				continue
			}
			if err := r.deleteRecord(ctx, zone, record, log); err != nil {
				return err
			}
		}
		return nil
	default:
		log.Trace("non-route record ignored")
		return nil
	}
}

// convergeARecords keeps an existing A record only if it is the complete and
// exact desired address set for its affinity group: every one of its
// addresses is desired with that very group and not claimed by an earlier
// record, and no desired address of the group is missing from it. Everything
// else at the hostname, existing CNAMEs included, is deleted, and one record
// per affinity group is created for the uncovered addresses. Deletions go
// first; providers reject transient duplicate-name conflicts.
//
// TODO: a record whose only drift is the TTL is neither flagged stale nor
// refreshed.
func (r *Reconciler) convergeARecords(ctx context.Context, zone Zone, hostname string, existing []ExtendedRecord, want map[netip.Addr]AffinityGroup, ttlSeconds int, log *OperationLog) error {
	claimed := map[netip.Addr]bool{}
	var removals []ExtendedRecord

	for _, record := range existing {
		switch record.Kind {
		case RecordKindA:
			addrs, err := parseAddrs(record.Targets, zone.Domain, hostname)
			if err != nil {
				return errors.WithStack(err)
			}
			keep := true
			for _, addr := range addrs {
				group, ok := want[addr]
				if !ok || group != record.Affinity || claimed[addr] {
					keep = false
					break
				}
			}
			if keep {
				for addr, group := range want {
					if group == record.Affinity && !slices.Contains(addrs, addr) {
						keep = false
						break
					}
				}
			}
			if keep {
				for _, addr := range addrs {
					claimed[addr] = true
				}
			} else {
				removals = append(removals, record)
			}
		case RecordKindCNAME:
			removals = append(removals, record)
		default:
			// Leave TXT records etc. alone.
		}
	}

	additions := map[AffinityGroup][]netip.Addr{}
	for addr, group := range want {
		if !claimed[addr] {
			additions[group] = append(additions[group], addr)
		}
	}

	for _, record := range removals {
		if err := r.deleteRecord(ctx, zone, record, log); err != nil {
			return err
		}
	}

	groups := lo.Keys(additions)
	slices.Sort(groups)
	for _, group := range groups {
		addrs := additions[group]
		sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
		record := ExtendedRecord{
			Hostname: hostname,
			Kind:     RecordKindA,
			Targets: lo.Map(addrs, func(addr netip.Addr, _ int) string {
				return addr.String()
			}),
			TTLSeconds: ttlSeconds,
			Affinity:   group,
		}
		if err := r.createRecord(ctx, zone, record, log); err != nil {
			return err
		}
	}

	return nil
}

// convergeCNAME keeps the first existing CNAME whose single target matches
// verbatim; duplicates and mismatches are deleted, as is every A record at
// the hostname. A new CNAME is created only when no match survived.
func (r *Reconciler) convergeCNAME(ctx context.Context, zone Zone, hostname string, existing []ExtendedRecord, target string, ttlSeconds int, log *OperationLog) error {
	var removals []ExtendedRecord
	found := false

	for _, record := range existing {
		switch record.Kind {
		case RecordKindA:
			removals = append(removals, record)
		case RecordKindCNAME:
			if !found && len(record.Targets) == 1 && record.Targets[0] == target {
				found = true
			} else {
				removals = append(removals, record)
			}
		default:
			// Leave TXT records etc. alone.
		}
	}

	for _, record := range removals {
		if err := r.deleteRecord(ctx, zone, record, log); err != nil {
			return err
		}
	}

	if !found {
		record := ExtendedRecord{
			Hostname:   hostname,
			Kind:       RecordKindCNAME,
			Targets:    []string{target},
			TTLSeconds: ttlSeconds,
		}
		if err := r.createRecord(ctx, zone, record, log); err != nil {
			return err
		}
	}

	return nil
}

// convergeMetadata converges the TXT slot of a hostname: every existing TXT
// record is deleted, then the desired value, if any, is created. A slot holds
// at most one TXT value, so diffing is not worth a partial update.
func (r *Reconciler) convergeMetadata(ctx context.Context, zone Zone, hostname string, desired Record, ttlSeconds int, log *OperationLog) error {
	records, err := r.client.ListRecords(ctx, zone)
	if err != nil {
		return errors.WithStack(err)
	}
	existing := lo.Filter(records, func(record ExtendedRecord, _ int) bool {
		if record.Hostname != hostname {
			return false
		}
		return record.Kind == RecordKindTXT || record.Kind == RecordKindMX || record.Kind == RecordKindSRV
	})

	switch desired.Kind() {
	case RecordKindTXT, RecordKindNone:
		for _, record := range existing {
			if record.Kind != RecordKindTXT {
				continue
			}
			if err := r.deleteRecord(ctx, zone, record, log); err != nil {
				return err
			}
		}
		if desired.Kind() == RecordKindTXT {
			record := ExtendedRecord{
				Hostname:   hostname,
				Kind:       RecordKindTXT,
				Targets:    []string{desired.Text()},
				TTLSeconds: effectiveTTL(ttlSeconds),
			}
			if err := r.createRecord(ctx, zone, record, log); err != nil {
				return err
			}
		}
		return nil
	default:
		log.Trace("non-metadata record ignored")
		return nil
	}
}

func (r *Reconciler) createRecord(ctx context.Context, zone Zone, record ExtendedRecord, log *OperationLog) error {
	log.Tracef("domain %s hostname %s create %s record %v", zone.ID, record.Hostname, record.Kind, record.Targets)
	r.logger.Info("creating record", "domain", zone.Domain, "hostname", record.Hostname, "kind", record.Kind, "targets", record.Targets)
	if err := r.client.CreateRecord(ctx, zone, record); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (r *Reconciler) deleteRecord(ctx context.Context, zone Zone, record ExtendedRecord, log *OperationLog) error {
	log.Tracef("domain %s hostname %s delete %s record %v", zone.ID, record.Hostname, record.Kind, record.Targets)
	r.logger.Info("deleting record", "domain", zone.Domain, "hostname", record.Hostname, "kind", record.Kind, "targets", record.Targets)
	if err := r.client.DeleteRecord(ctx, zone, record.Handle); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func effectiveTTL(ttlSeconds int) int {
	if ttlSeconds <= 0 {
		return DefaultTTLSeconds
	}
	return ttlSeconds
}

func parseAddrs(targets []string, domain, hostname string) ([]netip.Addr, error) {
	addrs := make([]netip.Addr, 0, len(targets))
	for _, target := range targets {
		addr, err := netip.ParseAddr(target)
		if err != nil {
			return nil, &RecordParseError{Value: target, Hostname: hostname, Domain: domain}
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
