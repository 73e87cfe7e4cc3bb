package dns_test

import (
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloud-dns-reconciler/pkg/dns"
)

var _ = Describe("RecordSet", func() {
	Describe("partitions", func() {
		var recordSet dns.RecordSet

		BeforeEach(func() {
			recordSet = dns.NewRecordSetBuilder().
				A("api", addr("1.2.3.4")).
				CNAME("www", "api.example.com").
				TXT("", "v=spf1 -all").
				Clear("gone").
				Build()
		})

		It("returns routes sorted by hostname", func() {
			routes := recordSet.Routes()
			Expect(routes).To(HaveLen(3))
			Expect(routes[0].Hostname).To(Equal("api"))
			Expect(routes[0].Record.Kind()).To(Equal(dns.RecordKindA))
			Expect(routes[1].Hostname).To(Equal("gone"))
			Expect(routes[2].Hostname).To(Equal("www"))
		})

		It("returns metadata without the routes", func() {
			metadata := recordSet.Metadata()
			Expect(metadata).To(HaveLen(2))
			Expect(metadata[0].Hostname).To(Equal(""))
			Expect(metadata[0].Record.Kind()).To(Equal(dns.RecordKindTXT))
			Expect(metadata[1].Hostname).To(Equal("gone"))
		})

		It("includes a None entry in both partitions", func() {
			routeKinds := []dns.RecordKind{}
			for _, entry := range recordSet.Routes() {
				routeKinds = append(routeKinds, entry.Record.Kind())
			}
			metadataKinds := []dns.RecordKind{}
			for _, entry := range recordSet.Metadata() {
				metadataKinds = append(metadataKinds, entry.Record.Kind())
			}
			Expect(routeKinds).To(ContainElement(dns.RecordKindNone))
			Expect(metadataKinds).To(ContainElement(dns.RecordKindNone))
		})
	})

	Describe("builder", func() {
		It("keeps records of different kinds at one hostname", func() {
			recordSet := dns.NewRecordSetBuilder().
				CNAME("api", "target.example.com").
				TXT("api", "owned").
				Build()

			Expect(recordSet.Len()).To(Equal(2))
			_, hasCNAME := recordSet.Get("api", dns.RecordKindCNAME)
			_, hasTXT := recordSet.Get("api", dns.RecordKindTXT)
			Expect(hasCNAME).To(BeTrue())
			Expect(hasTXT).To(BeTrue())
		})

		It("overwrites an earlier record of the same hostname and kind", func() {
			recordSet := dns.NewRecordSetBuilder().
				TXT("api", "old").
				TXT("api", "new").
				Build()

			Expect(recordSet.Len()).To(Equal(1))
			txt, _ := recordSet.Get("api", dns.RecordKindTXT)
			Expect(txt.Text()).To(Equal("new"))
		})
	})
})

var _ = Describe("Record", func() {
	It("compares A records element-wise", func() {
		left := dns.NewARecord(map[netip.Addr]dns.AffinityGroup{
			addr("1.2.3.4"): "us-east",
			addr("5.6.7.8"): dns.NoAffinity,
		})
		right := dns.NewARecord(map[netip.Addr]dns.AffinityGroup{
			addr("5.6.7.8"): dns.NoAffinity,
			addr("1.2.3.4"): "us-east",
		})
		Expect(left.Equal(right)).To(BeTrue())

		other := dns.NewARecord(map[netip.Addr]dns.AffinityGroup{
			addr("1.2.3.4"): "eu-west",
			addr("5.6.7.8"): dns.NoAffinity,
		})
		Expect(left.Equal(other)).To(BeFalse())
	})

	It("classifies routes and metadata", func() {
		Expect(dns.NewSingleIPRoute(addr("1.2.3.4")).IsRoute()).To(BeTrue())
		Expect(dns.NewCNAMERecord("x.example.com").IsRoute()).To(BeTrue())
		Expect(dns.NewTXTRecord("text").IsMetadata()).To(BeTrue())
		Expect(dns.NewTXTRecord("text").IsRoute()).To(BeFalse())
		Expect(dns.None().IsRoute()).To(BeFalse())
		Expect(dns.None().IsMetadata()).To(BeFalse())
	})

	It("renders addresses with their affinity groups", func() {
		record := dns.NewARecord(map[netip.Addr]dns.AffinityGroup{
			addr("1.2.3.4"): "us-east",
			addr("5.6.7.8"): dns.NoAffinity,
		})
		Expect(record.String()).To(Equal("A[1.2.3.4@us-east 5.6.7.8]"))
	})
})
