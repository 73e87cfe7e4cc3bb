// Package aws implements the DNS record primitives on top of Route 53.
package aws

import (
	"context"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/cloud-dns-reconciler/pkg/dns"
)

// Route53 implements dns.RecordsClient for AWS Route 53. Geographic affinity
// is encoded with geoproximity locations: the affinity group token is an AWS
// region name and doubles as the set identifier that lets several same-name A
// record sets coexist, one per group.
type Route53 struct {
	client *route53.Client
	logger logr.Logger
}

var _ dns.RecordsClient = (*Route53)(nil)

func NewRoute53(client *route53.Client, logger logr.Logger) *Route53 {
	return &Route53{
		client: client,
		logger: logger,
	}
}

// ResolveZone finds the hosted zone whose name matches domain exactly. Zone
// listing is deliberately not paginated: a truncated listing is a hard error,
// because converging against a partially visible account invites destructive
// mistakes.
func (r *Route53) ResolveZone(ctx context.Context, domain string) (dns.Zone, error) {
	output, err := r.client.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
	if err != nil {
		return dns.Zone{}, errors.WithStack(&dns.DependencyError{Op: "route53: list hosted zones", Err: err})
	}
	if output.IsTruncated {
		return dns.Zone{}, errors.WithStack(&dns.TruncatedListingError{Listing: "route53 hosted zone"})
	}

	for _, hostedZone := range output.HostedZones {
		if sansTrailingDot(awssdk.ToString(hostedZone.Name)) == domain {
			return dns.Zone{ID: awssdk.ToString(hostedZone.Id), Domain: domain}, nil
		}
	}
	return dns.Zone{}, errors.WithStack(&dns.ZoneNotFoundError{Domain: domain})
}

// ListRecords fetches every record set in the zone, following the
// NextRecordName continuation until the listing is exhausted. Alias record
// sets carry no literal targets and are skipped.
func (r *Route53) ListRecords(ctx context.Context, zone dns.Zone) ([]dns.ExtendedRecord, error) {
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: awssdk.String(zone.ID),
	}

	var records []dns.ExtendedRecord
	for {
		output, err := r.client.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, errors.WithStack(&dns.DependencyError{Op: "route53: list record sets for zone " + zone.ID, Err: err})
		}
		for _, recordSet := range output.ResourceRecordSets {
			if recordSet.AliasTarget != nil {
				continue
			}
			records = append(records, r.toExtendedRecord(zone.Domain, recordSet))
		}
		if !output.IsTruncated {
			break
		}
		input.StartRecordName = output.NextRecordName
		input.StartRecordType = output.NextRecordType
		input.StartRecordIdentifier = output.NextRecordIdentifier
	}

	r.logger.V(1).Info("listed record sets", "zone", zone.ID, "count", len(records))
	return records, nil
}

func (r *Route53) CreateRecord(ctx context.Context, zone dns.Zone, record dns.ExtendedRecord) error {
	targets := record.Targets
	if record.Kind == dns.RecordKindTXT {
		// Route 53 stores TXT values as quoted literals.
		targets = lo.Map(targets, func(target string, _ int) string {
			return doubleQuoted(target)
		})
	}

	recordSet := &route53types.ResourceRecordSet{
		Name: awssdk.String(fullyQualified(record.Hostname, zone.Domain)),
		Type: route53types.RRType(record.Kind),
		TTL:  awssdk.Int64(int64(record.TTLSeconds)),
		ResourceRecords: lo.Map(targets, func(target string, _ int) route53types.ResourceRecord {
			return route53types.ResourceRecord{Value: awssdk.String(target)}
		}),
	}
	if record.Affinity != dns.NoAffinity {
		recordSet.GeoProximityLocation = &route53types.GeoProximityLocation{
			AWSRegion: awssdk.String(string(record.Affinity)),
		}
		recordSet.SetIdentifier = awssdk.String(string(record.Affinity))
	}

	_, err := r.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: awssdk.String(zone.ID),
		ChangeBatch: &route53types.ChangeBatch{
			Changes: []route53types.Change{
				{
					Action:            route53types.ChangeActionUpsert,
					ResourceRecordSet: recordSet,
				},
			},
		},
	})
	if err != nil {
		return errors.WithStack(&dns.DependencyError{Op: "route53: upsert record in zone " + zone.ID, Err: err})
	}
	return nil
}

// DeleteRecord deletes the record set captured at listing time. Route 53
// rejects deletion of a record set that no longer matches with
// InvalidChangeBatch; that outcome counts as success so deletes stay
// idempotent.
func (r *Route53) DeleteRecord(ctx context.Context, zone dns.Zone, handle dns.RecordHandle) error {
	recordSet, ok := handle.(route53types.ResourceRecordSet)
	if !ok {
		return errors.Errorf("route53: unexpected record handle of type %T", handle)
	}

	_, err := r.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: awssdk.String(zone.ID),
		ChangeBatch: &route53types.ChangeBatch{
			Changes: []route53types.Change{
				{
					Action:            route53types.ChangeActionDelete,
					ResourceRecordSet: &recordSet,
				},
			},
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidChangeBatch" {
			r.logger.V(1).Info("record set already gone", "zone", zone.ID, "name", awssdk.ToString(recordSet.Name))
			return nil
		}
		return errors.WithStack(&dns.DependencyError{Op: "route53: delete record in zone " + zone.ID, Err: err})
	}
	return nil
}

func (r *Route53) toExtendedRecord(domain string, recordSet route53types.ResourceRecordSet) dns.ExtendedRecord {
	affinity := dns.NoAffinity
	if recordSet.GeoProximityLocation != nil && recordSet.GeoProximityLocation.AWSRegion != nil {
		affinity = dns.AffinityGroup(*recordSet.GeoProximityLocation.AWSRegion)
	}

	ttlSeconds := dns.DefaultTTLSeconds
	if recordSet.TTL != nil {
		ttlSeconds = int(*recordSet.TTL)
	}

	return dns.ExtendedRecord{
		Handle:   recordSet,
		Hostname: sansDomain(domain, parseName(awssdk.ToString(recordSet.Name))),
		Kind:     dns.RecordKind(recordSet.Type),
		Targets: lo.Map(recordSet.ResourceRecords, func(record route53types.ResourceRecord, _ int) string {
			return awssdk.ToString(record.Value)
		}),
		TTLSeconds: ttlSeconds,
		Affinity:   affinity,
	}
}

func doubleQuoted(text string) string {
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		return text
	}
	return `"` + text + `"`
}

// fullyQualified turns a hostname relative to domain into the name submitted
// to Route 53. The empty hostname denotes the apex.
func fullyQualified(hostname, domain string) string {
	if hostname == "" {
		return domain
	}
	if strings.HasSuffix(hostname, domain) {
		return hostname
	}
	return hostname + "." + domain
}

// sansDomain strips the domain suffix from a provider hostname, the inverse
// of fullyQualified. A name outside the domain is passed through unchanged;
// Route 53 never returns one for a zone's own records.
func sansDomain(domain, hostname string) string {
	if domain == hostname {
		return ""
	}
	if strings.HasSuffix(hostname, "."+domain) {
		return hostname[:len(hostname)-len(domain)-1]
	}
	return hostname
}

// parseName normalizes a Route 53 record name: the wildcard octet escape is
// decoded and the trailing root-zone dot stripped.
func parseName(name string) string {
	return sansTrailingDot(strings.ReplaceAll(name, `\052`, "*"))
}

func sansTrailingDot(name string) string {
	return strings.TrimSuffix(name, ".")
}
