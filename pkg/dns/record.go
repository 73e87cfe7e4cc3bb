package dns

import (
	"fmt"
	"maps"
	"net/netip"
	"sort"
	"strings"
)

// RecordKind is the wire-level DNS record type, e.g. "A" or "CNAME".
type RecordKind string

const (
	RecordKindA     RecordKind = "A"
	RecordKindCNAME RecordKind = "CNAME"
	RecordKindTXT   RecordKind = "TXT"
	RecordKindMX    RecordKind = "MX"
	RecordKindSRV   RecordKind = "SRV"
	// RecordKindNone marks the absence of a record. Used as a desired value to
	// request deletion of whatever exists at a hostname.
	RecordKindNone RecordKind = "NONE"
)

// AffinityGroup is an opaque provider routing-region token used for
// latency-based routing, e.g. an AWS region name. The empty string means no
// affinity: the record applies to all queriers.
type AffinityGroup string

// NoAffinity is the zero affinity group.
const NoAffinity AffinityGroup = ""

// Record is a desired DNS record: an A record backing one or more IP addresses
// each with an optional affinity group, a single-target CNAME, a TXT value, or
// None. Identity for record set bucketing is the kind only; payloads are
// compared element-wise during convergence.
type Record struct {
	kind      RecordKind
	addresses map[netip.Addr]AffinityGroup
	target    string
}

// NewSingleIPRoute returns an A record with one address and no affinity.
func NewSingleIPRoute(addr netip.Addr) Record {
	return NewAffineIPRoute(addr, NoAffinity)
}

// NewAffineIPRoute returns an A record with one address tagged to an affinity
// group.
func NewAffineIPRoute(addr netip.Addr, group AffinityGroup) Record {
	return NewARecord(map[netip.Addr]AffinityGroup{addr: group})
}

// NewARecord returns an A record backing the given addresses with their
// affinity groups.
func NewARecord(addresses map[netip.Addr]AffinityGroup) Record {
	return Record{kind: RecordKindA, addresses: maps.Clone(addresses)}
}

// NewCNAMERecord returns a CNAME record pointing at target.
func NewCNAMERecord(target string) Record {
	return Record{kind: RecordKindCNAME, target: target}
}

// NewTXTRecord returns a TXT record carrying text.
func NewTXTRecord(text string) Record {
	return Record{kind: RecordKindTXT, target: text}
}

// None returns the absence record. Converging it removes whatever exists at
// the hostname.
func None() Record {
	return Record{kind: RecordKindNone}
}

func (r Record) Kind() RecordKind {
	return r.kind
}

// Addresses returns the address to affinity group mapping of an A record, nil
// for any other kind.
func (r Record) Addresses() map[netip.Addr]AffinityGroup {
	return maps.Clone(r.addresses)
}

// Target returns the CNAME target, empty for any other kind.
func (r Record) Target() string {
	if r.kind != RecordKindCNAME {
		return ""
	}
	return r.target
}

// Text returns the TXT value, empty for any other kind.
func (r Record) Text() string {
	if r.kind != RecordKindTXT {
		return ""
	}
	return r.target
}

// IsRoute reports whether the record determines where traffic goes (A, CNAME).
func (r Record) IsRoute() bool {
	return r.kind == RecordKindA || r.kind == RecordKindCNAME
}

// IsMetadata reports whether the record carries non-routing information (TXT).
func (r Record) IsMetadata() bool {
	return r.kind == RecordKindTXT
}

// Equal compares kind and payload element-wise.
func (r Record) Equal(other Record) bool {
	return r.kind == other.kind &&
		r.target == other.target &&
		maps.Equal(r.addresses, other.addresses)
}

func (r Record) String() string {
	switch r.kind {
	case RecordKindA:
		pairs := make([]string, 0, len(r.addresses))
		for addr, group := range r.addresses {
			if group == NoAffinity {
				pairs = append(pairs, addr.String())
			} else {
				pairs = append(pairs, fmt.Sprintf("%s@%s", addr, group))
			}
		}
		sort.Strings(pairs)
		return fmt.Sprintf("A[%s]", strings.Join(pairs, " "))
	case RecordKindCNAME:
		return fmt.Sprintf("CNAME[%s]", r.target)
	case RecordKindTXT:
		return fmt.Sprintf("TXT[%s]", r.target)
	case RecordKindNone:
		return "NONE"
	default:
		return string(r.kind)
	}
}
