package dns_test

import (
	"context"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloud-dns-reconciler/pkg/dns"
	"github.com/cloud-dns-reconciler/pkg/dns/dnsfakes"
)

var _ = Describe("Registry", func() {
	var (
		ctx    context.Context
		logger logr.Logger
	)

	newFactory := func(built *int) dns.Factory {
		return func(context.Context, logr.Logger, map[string]string) (dns.Provider, error) {
			*built++
			return dns.NewReconciler(new(dnsfakes.FakeRecordsClient), logr.Discard()), nil
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		logger = logr.Discard()
	})

	It("rejects an unregistered provider name", func() {
		_, err := dns.NewProvider(ctx, "no-such-provider", logger, nil)
		Expect(err).To(MatchError(ContainSubstring(`unsupported DNS provider: "no-such-provider"`)))
	})

	It("panics on a duplicate registration", func() {
		built := 0
		dns.Register("registry-test-duplicate", newFactory(&built))
		Expect(func() {
			dns.Register("registry-test-duplicate", newFactory(&built))
		}).To(Panic())
	})

	It("reuses a provider instance for identical settings", func() {
		built := 0
		dns.Register("registry-test-cache", newFactory(&built))

		settings := map[string]string{"token": "abc", "timeout": "10s"}
		first, err := dns.NewProvider(ctx, "registry-test-cache", logger, settings)
		Expect(err).NotTo(HaveOccurred())
		second, err := dns.NewProvider(ctx, "registry-test-cache", logger, map[string]string{"timeout": "10s", "token": "abc"})
		Expect(err).NotTo(HaveOccurred())

		Expect(built).To(Equal(1))
		Expect(first).To(BeIdenticalTo(second))
	})

	It("builds a fresh instance for different settings", func() {
		built := 0
		dns.Register("registry-test-settings", newFactory(&built))

		_, err := dns.NewProvider(ctx, "registry-test-settings", logger, map[string]string{"token": "abc"})
		Expect(err).NotTo(HaveOccurred())
		_, err = dns.NewProvider(ctx, "registry-test-settings", logger, map[string]string{"token": "xyz"})
		Expect(err).NotTo(HaveOccurred())

		Expect(built).To(Equal(2))
	})
})
