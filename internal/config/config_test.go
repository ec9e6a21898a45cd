package config_test

import (
	"log/slog"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/provider/nhl"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given an empty environment", t, func() {
		cfg, err := config.Load()

		Convey("Then the pipeline defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.APIPort, ShouldEqual, 8000)
			So(cfg.DefaultDuration, ShouldEqual, 7)
			So(cfg.MaxDuration, ShouldEqual, 10)
			So(cfg.DefaultThreshold, ShouldEqual, 0.5)
			So(cfg.SkaterLimit, ShouldEqual, 60)
			So(cfg.GoalieLimit, ShouldEqual, 15)
			So(cfg.BatchSize, ShouldEqual, 3)
			So(cfg.BatchDelay, ShouldEqual, 75*time.Millisecond)
			So(cfg.SeasonDelay, ShouldEqual, 100*time.Millisecond)
			So(cfg.RateLimitSweep, ShouldEqual, 10*time.Minute)
			So(cfg.RateLimitIdleTTL, ShouldEqual, 30*time.Minute)
			So(cfg.NHLStatsBaseURL, ShouldEqual, nhl.DefaultStatsBaseURL)
			So(cfg.SlogLevel(), ShouldEqual, slog.LevelInfo)
			So(cfg.IsProduction(), ShouldBeFalse)
		})
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("EXPORT_BATCH_SIZE", "5")
	t.Setenv("EXPORT_BATCH_DELAY", "250ms")
	t.Setenv("EXPORT_DEFAULT_THRESHOLD", "1.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NHL_WEB_BASE_URL", "http://127.0.0.1:8081/v1")

	Convey("Given environment overrides", t, func() {
		cfg, err := config.Load()

		Convey("Then they replace the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.APIPort, ShouldEqual, 9090)
			So(cfg.IsProduction(), ShouldBeTrue)
			So(cfg.SlogLevel(), ShouldEqual, slog.LevelDebug)
			So(cfg.BatchSize, ShouldEqual, 5)
			So(cfg.BatchDelay, ShouldEqual, 250*time.Millisecond)
			So(cfg.DefaultThreshold, ShouldEqual, 1.5)
			So(cfg.CORSAllowOrigins, ShouldResemble, []string{"https://a.example", "https://b.example"})
		})

		Convey("And they flow into the client and pipeline settings", func() {
			So(cfg.ClientOptions().WebBaseURL, ShouldEqual, "http://127.0.0.1:8081/v1")
			So(cfg.ExportConfig().BatchSize, ShouldEqual, 5)
			So(cfg.ExportConfig().BatchDelay, ShouldEqual, 250*time.Millisecond)
		})
	})
}

func TestLoadRejectsInvalid(t *testing.T) {
	Convey("Given a default duration above the maximum", t, func() {
		t.Setenv("EXPORT_DEFAULT_DURATION", "12")
		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("Given an unknown environment name", t, func() {
		t.Setenv("EXPORT_DEFAULT_DURATION", "7")
		t.Setenv("ENVIRONMENT", "qa")
		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})
}
