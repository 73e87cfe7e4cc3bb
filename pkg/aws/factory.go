package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/cloud-dns-reconciler/pkg/dns"
)

// Settings understood by the "aws" provider factory. All are optional: the
// default credential and region chain applies when they are absent.
const (
	SettingRegion   = "region"
	SettingProfile  = "profile"
	SettingEndpoint = "endpoint"
)

func init() {
	dns.Register("aws", New)
}

// New builds a Route 53 backed provider from its settings.
func New(ctx context.Context, logger logr.Logger, settings map[string]string) (dns.Provider, error) {
	var options []func(*awsconfig.LoadOptions) error
	if region := settings[SettingRegion]; region != "" {
		options = append(options, awsconfig.WithRegion(region))
	}
	if profile := settings[SettingProfile]; profile != "" {
		options = append(options, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, errors.WithStack(&dns.DependencyError{Op: "route53: load AWS configuration", Err: err})
	}

	client := route53.NewFromConfig(cfg, func(o *route53.Options) {
		if endpoint := settings[SettingEndpoint]; endpoint != "" {
			o.BaseEndpoint = awssdk.String(endpoint)
		}
	})
	return dns.NewReconciler(NewRoute53(client, logger), logger), nil
}
