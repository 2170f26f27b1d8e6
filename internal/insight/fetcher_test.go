package insight_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aura.app/relay/internal/insight"
)

var _ = Describe("Fetcher", func() {
	var (
		ctx    context.Context
		source *mockSource
	)

	BeforeEach(func() {
		ctx = context.Background()
		source = &mockSource{}
	})

	It("joins sampled snippets behind the data points label", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"Try deep breathing", "Talk to a counselor"}, nil
		}

		got := insight.NewFetcher(source, insight.MaxInsights).Fetch(ctx, "stress")

		Expect(got).To(Equal("Relevant data points: Try deep breathing; Talk to a counselor"))
		Expect(source.gotTopic).To(Equal("stress"))
		Expect(source.gotLimit).To(Equal(3))
	})

	It("renders a single snippet without a separator", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"Keep a regular bedtime"}, nil
		}

		Expect(insight.NewFetcher(source, 3).Fetch(ctx, "sleep")).
			To(Equal("Relevant data points: Keep a regular bedtime"))
	})

	It("returns the no-data string when nothing matches", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{}, nil
		}

		Expect(insight.NewFetcher(source, 3).Fetch(ctx, "unknown")).
			To(Equal("No specific data insights found for this topic."))
	})

	It("treats a nil result as no data", func() {
		Expect(insight.NewFetcher(source, 3).Fetch(ctx, "unknown")).To(Equal(insight.NoInsightsFound))
	})

	It("absorbs source failures into the unavailable string", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return nil, errors.New("permission denied")
		}

		got := insight.NewFetcher(source, 3).Fetch(ctx, "stress")

		Expect(got).To(Equal("Could not retrieve specific data insights at the moment."))
		Expect(source.sampleCalls).To(Equal(1))
	})

	It("never returns more snippets than the limit", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"a", "b", "c", "d", "e"}, nil
		}

		Expect(insight.NewFetcher(source, 3).Fetch(ctx, "t")).To(Equal("Relevant data points: a; b; c"))
	})

	It("caps a configured limit above MaxInsights", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"a", "b", "c", "d", "e"}, nil
		}

		got := insight.NewFetcher(source, 5).Fetch(ctx, "t")

		Expect(got).To(Equal("Relevant data points: a; b; c"))
		Expect(source.gotLimit).To(Equal(insight.MaxInsights))
	})

	It("honours a limit below MaxInsights", func() {
		source.sampleFn = func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"a", "b", "c"}, nil
		}

		Expect(insight.NewFetcher(source, 1).Fetch(ctx, "t")).To(Equal("Relevant data points: a"))
		Expect(source.gotLimit).To(Equal(1))
	})

	It("defaults a non-positive limit to MaxInsights", func() {
		insight.NewFetcher(source, 0).Fetch(ctx, "t")
		Expect(source.gotLimit).To(Equal(insight.MaxInsights))
	})
})

var _ = Describe("arango source", func() {
	It("delegates to the client and wraps failures", func() {
		client := &mockArangoClient{sampleFn: func(_ context.Context, topic string, limit int) ([]string, error) {
			Expect(topic).To(Equal("sleep"))
			Expect(limit).To(Equal(3))
			return []string{"Dim screens early"}, nil
		}}
		source := insight.NewArangoSource(client)

		texts, err := source.Sample(context.Background(), "sleep", 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(texts).To(ConsistOf("Dim screens early"))
		Expect(source.Name()).To(Equal("arangodb"))

		client.sampleFn = func(context.Context, string, int) ([]string, error) {
			return nil, errors.New("connection refused")
		}
		_, err = source.Sample(context.Background(), "sleep", 3)
		Expect(err).To(MatchError(ContainSubstring("arangodb sample: connection refused")))

		Expect(source.Close()).To(Succeed())
		Expect(client.closed).To(BeTrue())
	})
})
