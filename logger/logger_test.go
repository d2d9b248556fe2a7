package logger_test

import (
	"bytes"
	"context"
	"encoding/json"

	"civicreporter/config"
	"civicreporter/logger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("logger", func() {
	It("adds context fields to JSON records in production", func() {
		var buf bytes.Buffer
		log := logger.New(config.Config{Env: "production"}, &buf)

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{Component: "civic.test"})
		ctx = logger.WithIssueID(ctx, 7)
		log.InfoContext(ctx, "issue updated")

		var record map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &record)).To(Succeed())
		Expect(record["msg"]).To(Equal("issue updated"))
		Expect(record["issue_id"]).To(BeEquivalentTo(7))
		Expect(record["component"]).To(Equal("civic.test"))
	})

	It("keeps earlier fields when merging", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{RequestID: "r-1"})
		ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "c"})

		fields := logger.GetLogFields(ctx)
		Expect(fields.RequestID).To(Equal("r-1"))
		Expect(fields.Component).To(Equal("c"))
		Expect(fields.IssueID).To(BeNil())
	})

	It("suppresses debug records outside development", func() {
		var buf bytes.Buffer
		log := logger.New(config.Config{Env: "staging"}, &buf)
		log.Debug("hidden")
		Expect(buf.Len()).To(BeZero())
	})
})
