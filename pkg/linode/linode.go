// Package linode implements the DNS record primitives on top of the Linode
// v4 domains API.
package linode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/cloud-dns-reconciler/pkg/dns"
)

const (
	defaultBaseURL = "https://api.linode.com/v4"
	defaultTimeout = 5 * time.Second
	userAgent      = "cloud-dns-reconciler"
)

// Linode implements dns.RecordsClient against the Linode v4 REST API. Linode
// domain records hold exactly one target each, so a multi-address create is
// expanded into one API record per address. Linode has no notion of
// geographic routing; affinity groups are accepted and dropped.
type Linode struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logr.Logger
}

var _ dns.RecordsClient = (*Linode)(nil)

func NewLinode(httpClient *http.Client, baseURL, token string, logger logr.Logger) *Linode {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Linode{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}
}

type domainRecord struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name"`
	Target string `json:"target"`
	TTLSec int    `json:"ttl_sec"`
	Type   string `json:"type"`
}

type listPage[T any] struct {
	Data  []T `json:"data"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// ResolveZone finds the domain entity matching domain exactly. The domain
// listing is not paginated: an account with more domains than one page holds
// is a hard error rather than a partial view.
func (l *Linode) ResolveZone(ctx context.Context, domain string) (dns.Zone, error) {
	var page listPage[struct {
		ID     int    `json:"id"`
		Domain string `json:"domain"`
	}]
	if err := l.do(ctx, http.MethodGet, "/domains", nil, &page); err != nil {
		return dns.Zone{}, err
	}
	if page.Pages > 1 {
		return dns.Zone{}, errors.WithStack(&dns.TruncatedListingError{Listing: "linode domain"})
	}

	for _, candidate := range page.Data {
		if candidate.Domain == domain {
			return dns.Zone{ID: strconv.Itoa(candidate.ID), Domain: domain}, nil
		}
	}
	return dns.Zone{}, errors.WithStack(&dns.ZoneNotFoundError{Domain: domain})
}

// ListRecords fetches every record of the domain, walking the page counter
// until the reported page count is reached.
func (l *Linode) ListRecords(ctx context.Context, zone dns.Zone) ([]dns.ExtendedRecord, error) {
	var records []dns.ExtendedRecord
	for pageNumber := 1; ; pageNumber++ {
		var page listPage[domainRecord]
		path := fmt.Sprintf("/domains/%s/records?page=%d", zone.ID, pageNumber)
		if err := l.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		for _, record := range page.Data {
			records = append(records, dns.ExtendedRecord{
				Handle:     record.ID,
				Hostname:   record.Name,
				Kind:       dns.RecordKind(record.Type),
				Targets:    []string{record.Target},
				TTLSeconds: record.TTLSec,
				Affinity:   dns.NoAffinity,
			})
		}
		if page.Pages == 0 || pageNumber >= page.Pages {
			break
		}
	}

	l.logger.V(1).Info("listed domain records", "zone", zone.ID, "count", len(records))
	return records, nil
}

func (l *Linode) CreateRecord(ctx context.Context, zone dns.Zone, record dns.ExtendedRecord) error {
	if record.Affinity != dns.NoAffinity {
		l.logger.V(1).Info("linode has no geographic routing, dropping affinity group",
			"hostname", record.Hostname, "affinity", record.Affinity)
	}

	for _, target := range record.Targets {
		payload := domainRecord{
			Name:   record.Hostname,
			Target: target,
			TTLSec: record.TTLSeconds,
			Type:   string(record.Kind),
		}
		var created domainRecord
		path := fmt.Sprintf("/domains/%s/records", zone.ID)
		if err := l.do(ctx, http.MethodPost, path, payload, &created); err != nil {
			return err
		}
	}
	return nil
}

func (l *Linode) DeleteRecord(ctx context.Context, zone dns.Zone, handle dns.RecordHandle) error {
	recordID, ok := handle.(int)
	if !ok {
		return errors.Errorf("linode: unexpected record handle of type %T", handle)
	}
	path := fmt.Sprintf("/domains/%s/records/%d", zone.ID, recordID)
	return l.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one API call. Any transport failure, non-2xx status or
// undecodable body surfaces as a DependencyError carrying the provider's
// reported reason when one is present.
func (l *Linode) do(ctx context.Context, method, path string, payload, out any) error {
	op := fmt.Sprintf("linode: %s %s", method, path)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(&dns.DependencyError{Op: op, Err: err})
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, l.baseURL+path, body)
	if err != nil {
		return errors.WithStack(&dns.DependencyError{Op: op, Err: err})
	}
	request.Header.Set("Authorization", "Bearer "+l.token)
	request.Header.Set("User-Agent", userAgent)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := l.httpClient.Do(request)
	if err != nil {
		return errors.WithStack(&dns.DependencyError{Op: op, Err: err})
	}
	defer func() { _ = response.Body.Close() }()

	text, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.WithStack(&dns.DependencyError{Op: op, Err: err})
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return errors.WithStack(&dns.DependencyError{Op: op, Err: apiError(response.StatusCode, text)})
	}

	if out != nil {
		if err := json.Unmarshal(text, out); err != nil {
			return errors.WithStack(&dns.DependencyError{Op: op, Err: apiError(response.StatusCode, text)})
		}
	}
	return nil
}

// apiError extracts the first reported reason from a Linode error body.
func apiError(statusCode int, body []byte) error {
	var envelope struct {
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return errors.Errorf("status %d: %s", statusCode, envelope.Errors[0].Reason)
	}
	return errors.Errorf("status %d: cannot parse linode error", statusCode)
}
