package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aura.app/relay/common/logger"
)

var _ = Describe("LogFields", func() {
	It("merges newer non-empty values over older ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID: logger.Ptr("1"),
			Component: "relay.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			Topic:     logger.Ptr("stress"),
			Component: "relay.insight.fetcher",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.RequestID).To(Equal("1"))
		Expect(*fields.Topic).To(Equal("stress"))
		Expect(fields.Component).To(Equal("relay.insight.fetcher"))
		Expect(fields.Provider).To(BeNil())
	})

	It("returns empty fields for a bare context", func() {
		Expect(logger.GetLogFields(context.Background())).To(Equal(logger.LogFields{}))
	})
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		var buf bytes.Buffer
		log := slog.New(logger.NewTraceHandler(slog.NewJSONHandler(&buf, nil)))

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID: logger.Ptr("42"),
			Topic:     logger.Ptr("sleep"),
			Backend:   logger.Ptr("sqlite"),
			Provider:  logger.Ptr("gemini"),
			Component: "relay.service.chat",
		})
		log.InfoContext(ctx, "hello")

		var rec map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &rec)).To(Succeed())
		Expect(rec).To(HaveKeyWithValue("request_id", "42"))
		Expect(rec).To(HaveKeyWithValue("topic", "sleep"))
		Expect(rec).To(HaveKeyWithValue("backend", "sqlite"))
		Expect(rec).To(HaveKeyWithValue("provider", "gemini"))
		Expect(rec).To(HaveKeyWithValue("component", "relay.service.chat"))
		Expect(rec).NotTo(HaveKey("trace_id"))
	})
})

var _ = Describe("Truncate", func() {
	DescribeTable("shortens long strings",
		func(in string, max int, want string) {
			Expect(logger.Truncate(in, max)).To(Equal(want))
		},
		Entry("short string unchanged", "abc", 5, "abc"),
		Entry("exact length unchanged", "abcde", 5, "abcde"),
		Entry("long string cut", strings.Repeat("x", 8), 3, "xxx..."),
		Entry("multi-byte runes kept whole", "héllo wörld", 4, "héll..."),
	)
})
