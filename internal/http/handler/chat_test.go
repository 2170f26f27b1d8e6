package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aura.app/relay/internal/http/handler"
	"aura.app/relay/internal/service"
)

var _ = Describe("ChatHandler", func() {
	var (
		router *gin.Engine
		svc    *mockChatService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockChatService{}
		h := handler.NewChatHandler(svc)
		router.POST("/api/chat", h.Chat)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	It("returns 200 with the generated text", func() {
		var gotTopic, gotInput string
		svc.replyFn = func(_ context.Context, topic, userInput string) (string, error) {
			gotTopic, gotInput = topic, userInput
			return "Here are some tips...", nil
		}

		w := post(`{"userInput": "I feel stressed about exams", "topic": "stress"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]any{"response": "Here are some tips..."}))
		Expect(gotTopic).To(Equal("stress"))
		Expect(gotInput).To(Equal("I feel stressed about exams"))
	})

	It("accepts empty strings as present fields", func() {
		svc.replyFn = func(_ context.Context, _, _ string) (string, error) {
			return "ok", nil
		}

		w := post(`{"userInput": "", "topic": ""}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.calls).To(Equal(1))
	})

	DescribeTable("rejects malformed bodies without calling the service",
		func(body string) {
			w := post(body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)).To(Equal(map[string]any{"error": "Invalid request body"}))
			Expect(svc.calls).To(BeZero())
		},
		Entry("missing userInput", `{"topic": "sleep"}`),
		Entry("missing topic", `{"userInput": "hi"}`),
		Entry("missing both", `{}`),
		Entry("null field", `{"userInput": null, "topic": "sleep"}`),
		Entry("wrong type", `{"userInput": 5, "topic": "sleep"}`),
		Entry("truncated JSON", `{`),
		Entry("empty body", ``),
		Entry("JSON null", `null`),
	)

	It("does not log invalid bodies as warnings", func() {
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		DeferCleanup(func() { slog.SetDefault(previous) })

		w := post(`{"topic": "sleep"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(buf.String()).To(ContainSubstring(`msg="invalid chat request"`))
		Expect(buf.String()).To(ContainSubstring("level=DEBUG"))
		Expect(buf.String()).NotTo(ContainSubstring("level=WARN"))
		Expect(buf.String()).NotTo(ContainSubstring("level=ERROR"))
	})

	It("masks generation failures behind a generic 500", func() {
		svc.replyFn = func(_ context.Context, _, _ string) (string, error) {
			return "", &service.GenerationError{Provider: "gemini", Err: errors.New("API key invalid: sk-123")}
		}

		w := post(`{"userInput": "hi", "topic": "stress"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]any{"error": "Failed to get response from AI model"}))
		Expect(w.Body.String()).NotTo(ContainSubstring("sk-123"))
	})

	It("returns the same 500 body for unexpected service errors", func() {
		svc.replyFn = func(_ context.Context, _, _ string) (string, error) {
			return "", fmt.Errorf("unexpected: %w", errors.New("boom"))
		}

		w := post(`{"userInput": "hi", "topic": "stress"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]any{"error": "Failed to get response from AI model"}))
	})
})
