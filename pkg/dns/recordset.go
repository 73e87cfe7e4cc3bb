package dns

import (
	"net/netip"
	"sort"
)

type recordSetKey struct {
	hostname string
	kind     RecordKind
}

// RecordSetEntry is one (hostname, record) pair of a RecordSet. Hostnames are
// relative to the domain; the apex is the empty string.
type RecordSetEntry struct {
	Hostname string
	Record   Record
}

// RecordSet is the desired set of DNS records for one domain, keyed by
// (hostname, kind). At most one entry exists per key.
type RecordSet struct {
	entries map[recordSetKey]Record
}

// NewRecordSetBuilder returns an empty record set builder.
func NewRecordSetBuilder() *RecordSetBuilder {
	return &RecordSetBuilder{entries: map[recordSetKey]Record{}}
}

// Len returns the number of entries in the set.
func (s RecordSet) Len() int {
	return len(s.entries)
}

// Get returns the record stored for (hostname, kind) and whether it exists.
func (s RecordSet) Get(hostname string, kind RecordKind) (Record, bool) {
	record, ok := s.entries[recordSetKey{hostname: hostname, kind: kind}]
	return record, ok
}

// Entries returns every entry sorted by hostname then kind.
func (s RecordSet) Entries() []RecordSetEntry {
	return s.filter(func(Record) bool { return true })
}

// Routes returns the route entries (A, CNAME and None) but not the metadata
// entries. Routes and metadata are reconciled independently, so None appears
// in both partitions: clearing a hostname must remove its routes and its
// metadata alike.
func (s RecordSet) Routes() []RecordSetEntry {
	return s.filter(func(r Record) bool {
		return r.IsRoute() || r.Kind() == RecordKindNone
	})
}

// Metadata returns the metadata entries (TXT and None) but not the route
// entries.
func (s RecordSet) Metadata() []RecordSetEntry {
	return s.filter(func(r Record) bool {
		return r.IsMetadata() || r.Kind() == RecordKindNone
	})
}

func (s RecordSet) filter(keep func(Record) bool) []RecordSetEntry {
	entries := make([]RecordSetEntry, 0, len(s.entries))
	for key, record := range s.entries {
		if keep(record) {
			entries = append(entries, RecordSetEntry{Hostname: key.hostname, Record: record})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Hostname != entries[j].Hostname {
			return entries[i].Hostname < entries[j].Hostname
		}
		return entries[i].Record.Kind() < entries[j].Record.Kind()
	})
	return entries
}

// RecordSetBuilder accumulates (hostname, record) pairs. Inserting a record
// for an already-present (hostname, kind) key overwrites the earlier one.
type RecordSetBuilder struct {
	entries map[recordSetKey]Record
}

// A adds an A record for hostname backing the given addresses, no affinity.
func (b *RecordSetBuilder) A(hostname string, addrs ...netip.Addr) *RecordSetBuilder {
	addresses := make(map[netip.Addr]AffinityGroup, len(addrs))
	for _, addr := range addrs {
		addresses[addr] = NoAffinity
	}
	return b.AG(hostname, addresses)
}

// AG adds an A record for hostname backing addresses with optional affinity
// groups.
func (b *RecordSetBuilder) AG(hostname string, addresses map[netip.Addr]AffinityGroup) *RecordSetBuilder {
	return b.Add(hostname, NewARecord(addresses))
}

// CNAME adds a CNAME record for hostname pointing at target.
func (b *RecordSetBuilder) CNAME(hostname, target string) *RecordSetBuilder {
	return b.Add(hostname, NewCNAMERecord(target))
}

// TXT adds a TXT record for hostname carrying text.
func (b *RecordSetBuilder) TXT(hostname, text string) *RecordSetBuilder {
	return b.Add(hostname, NewTXTRecord(text))
}

// Clear adds a None record for hostname, requesting removal of its routes and
// metadata.
func (b *RecordSetBuilder) Clear(hostname string) *RecordSetBuilder {
	return b.Add(hostname, None())
}

// Add inserts an arbitrary record for hostname.
func (b *RecordSetBuilder) Add(hostname string, record Record) *RecordSetBuilder {
	b.entries[recordSetKey{hostname: hostname, kind: record.Kind()}] = record
	return b
}

// Build returns the accumulated record set.
func (b *RecordSetBuilder) Build() RecordSet {
	entries := make(map[recordSetKey]Record, len(b.entries))
	for key, record := range b.entries {
		entries[key] = record
	}
	return RecordSet{entries: entries}
}
