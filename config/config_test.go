package config_test

import (
	"context"
	"time"

	"civicreporter/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	It("falls back to defaults", func() {
		for _, key := range []string{"PORT", "GO_ENV", "ISSUE_RATE_LIMIT", "LOCATION_DETECT_DELAY", "SEED_SAMPLE_DATA", "REDIS_ADDRESS", "CORS_ORIGINS"} {
			GinkgoT().Setenv(key, "")
		}

		cfg := config.Load()
		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.IsDevelopment()).To(BeTrue())
		Expect(cfg.IssueRateLimit).To(Equal(20))
		Expect(cfg.LocationDetectDelay).To(Equal(2 * time.Second))
		Expect(cfg.SeedSampleData).To(BeTrue())
		Expect(cfg.Redis.Enabled()).To(BeFalse())
		Expect(cfg.CORSOrigins).To(Equal([]string{"*"}))
		Expect(cfg.Auth.TokenTTL).To(Equal(72 * time.Hour))
	})

	It("reads overrides from the environment", func() {
		GinkgoT().Setenv("PORT", "9090")
		GinkgoT().Setenv("GO_ENV", "production")
		GinkgoT().Setenv("ISSUE_RATE_LIMIT", "3")
		GinkgoT().Setenv("LOCATION_DETECT_DELAY", "150ms")
		GinkgoT().Setenv("SEED_SAMPLE_DATA", "false")
		GinkgoT().Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
		GinkgoT().Setenv("REDIS_ADDRESS", "localhost:6379")

		cfg := config.Load()
		Expect(cfg.Port).To(Equal("9090"))
		Expect(cfg.IsProduction()).To(BeTrue())
		Expect(cfg.IssueRateLimit).To(Equal(3))
		Expect(cfg.LocationDetectDelay).To(Equal(150 * time.Millisecond))
		Expect(cfg.SeedSampleData).To(BeFalse())
		Expect(cfg.CORSOrigins).To(Equal([]string{"https://a.example", "https://b.example"}))
		Expect(cfg.Redis.Enabled()).To(BeTrue())
	})

	It("skips redis when no address is configured", func() {
		client, err := config.ConnectRedis(context.Background(), config.RedisConfig{})
		Expect(err).NotTo(HaveOccurred())
		Expect(client).To(BeNil())
	})
})
