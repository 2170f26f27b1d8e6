package insight

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

type fakeSetReader struct {
	key    string
	count  int64
	result []string
	err    error
}

func (f *fakeSetReader) SRandMemberN(ctx context.Context, key string, count int64) *redis.StringSliceCmd {
	f.key = key
	f.count = count
	return redis.NewStringSliceResult(f.result, f.err)
}

var _ = Describe("sample queries", func() {
	It("parameterizes the BigQuery topic and limit", func() {
		Expect(bigQuerySampleSQL("proj.ds.teen_wellbeing_insights")).To(Equal(
			"SELECT insight_text FROM `proj.ds.teen_wellbeing_insights` WHERE topic = @topic ORDER BY RAND() LIMIT @limit"))
	})

	It("quotes the Postgres table identifier", func() {
		Expect(postgresSampleSQL("teen_wellbeing_insights")).To(Equal(
			`SELECT insight_text FROM "teen_wellbeing_insights" WHERE topic = $1 ORDER BY random() LIMIT $2`))
	})

	It("quotes schema and table separately for a qualified Postgres name", func() {
		Expect(postgresSampleSQL("analytics.teen_wellbeing_insights")).To(Equal(
			`SELECT insight_text FROM "analytics"."teen_wellbeing_insights" WHERE topic = $1 ORDER BY random() LIMIT $2`))
	})

	DescribeTable("validates table names",
		func(table string, ok bool) {
			err := validateTableName(table)
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("plain", "insights", true),
		Entry("dataset qualified", "my-project.dataset.insights", true),
		Entry("empty", "", false),
		Entry("empty part", "schema..table", false),
		Entry("trailing dot", "table.", false),
		Entry("backtick", "a`b", false),
		Entry("whitespace", "a b", false),
		Entry("quote", `a"b`, false),
	)
})

var _ = Describe("redis source", func() {
	It("samples the per-topic set", func() {
		reader := &fakeSetReader{result: []string{"Try deep breathing"}}
		source := &redisSource{reader: reader, close: func() error { return nil }, keyPrefix: "insights:"}

		texts, err := source.Sample(context.Background(), "stress", 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(texts).To(Equal([]string{"Try deep breathing"}))
		Expect(reader.key).To(Equal("insights:stress"))
		Expect(reader.count).To(Equal(int64(3)))
	})

	It("wraps redis errors", func() {
		reader := &fakeSetReader{err: errors.New("LOADING")}
		source := &redisSource{reader: reader, close: func() error { return nil }, keyPrefix: "insights:"}

		_, err := source.Sample(context.Background(), "stress", 3)

		Expect(err).To(MatchError(ContainSubstring("redis srandmember: LOADING")))
	})
})
