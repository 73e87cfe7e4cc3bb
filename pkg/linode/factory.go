package linode

import (
	"context"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/cloud-dns-reconciler/pkg/dns"
)

// Settings understood by the "linode" provider factory. Only the personal
// access token is required.
const (
	SettingToken   = "token"
	SettingBaseURL = "base_url"
	SettingTimeout = "timeout"
)

func init() {
	dns.Register("linode", New)
}

// New builds a Linode backed provider from its settings.
func New(_ context.Context, logger logr.Logger, settings map[string]string) (dns.Provider, error) {
	token := settings[SettingToken]
	if token == "" {
		return nil, errors.Errorf("linode: missing required setting %q", SettingToken)
	}

	timeout := defaultTimeout
	if raw := settings[SettingTimeout]; raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "linode: invalid setting %q", SettingTimeout)
		}
		timeout = parsed
	}

	httpClient := &http.Client{Timeout: timeout}
	records := NewLinode(httpClient, settings[SettingBaseURL], token, logger)
	return dns.NewReconciler(records, logger), nil
}
