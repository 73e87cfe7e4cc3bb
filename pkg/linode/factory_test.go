package linode

import (
	"context"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("New", func() {
	It("requires a token", func() {
		_, err := New(context.Background(), logr.Discard(), map[string]string{})
		Expect(err).To(MatchError(ContainSubstring(`missing required setting "token"`)))
	})

	It("rejects an unparsable timeout", func() {
		_, err := New(context.Background(), logr.Discard(), map[string]string{
			"token":   "abc",
			"timeout": "soon",
		})
		Expect(err).To(MatchError(ContainSubstring(`invalid setting "timeout"`)))
	})

	It("builds a provider from a token alone", func() {
		provider, err := New(context.Background(), logr.Discard(), map[string]string{"token": "abc"})
		Expect(err).NotTo(HaveOccurred())
		Expect(provider).NotTo(BeNil())
	})
})
