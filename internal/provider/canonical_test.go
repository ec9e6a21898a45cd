package provider_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/albapepper/nhl-stats-export/internal/provider"
)

func TestCategory(t *testing.T) {
	Convey("Each category resolves its own field names", t, func() {
		So(provider.Skater.Endpoint(), ShouldEqual, "skater")
		So(provider.Skater.TrackedStat(), ShouldEqual, "points")
		So(provider.Skater.NameField(), ShouldEqual, "skaterFullName")
		So(provider.Skater.FixedPosition(), ShouldEqual, "")
		So(provider.Skater.String(), ShouldEqual, "Skater")

		So(provider.Goalie.Endpoint(), ShouldEqual, "goalie")
		So(provider.Goalie.TrackedStat(), ShouldEqual, "saves")
		So(provider.Goalie.SortKey(), ShouldEqual, "wins")
		So(provider.Goalie.FixedPosition(), ShouldEqual, "G")
		So(provider.Goalie.String(), ShouldEqual, "Goalie")
	})

	Convey("Game log values follow the category", t, func() {
		g := provider.GameLogEntry{Points: 2, Saves: 30}
		So(g.Value(provider.Skater), ShouldEqual, 2)
		So(g.Value(provider.Goalie), ShouldEqual, 30)
	})

	Convey("Season totals track the same statistic as game logs", t, func() {
		p := provider.PlayerSeason{Points: 80, Saves: 1200}
		p.Category = provider.Skater
		So(p.Tracked(), ShouldEqual, 80)
		p.Category = provider.Goalie
		So(p.Tracked(), ShouldEqual, 1200)
	})
}

func TestExtract(t *testing.T) {
	Convey("ExtractValue handles the shapes the APIs return", t, func() {
		v, ok := provider.ExtractValue(3.0)
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 3)

		v, ok = provider.ExtractValue(" 0.915 ")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 0.915)

		v, ok = provider.ExtractValue(map[string]interface{}{"default": 7.0})
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 7)

		_, ok = provider.ExtractValue(nil)
		So(ok, ShouldBeFalse)

		_, ok = provider.ExtractValue("EDM")
		So(ok, ShouldBeFalse)
	})

	Convey("ExtractString unwraps localized names", t, func() {
		So(provider.ExtractString("EDM"), ShouldEqual, "EDM")
		So(provider.ExtractString(map[string]interface{}{"default": "Oilers"}), ShouldEqual, "Oilers")
		So(provider.ExtractString(nil), ShouldEqual, "")
	})

	Convey("StatMap keeps numeric fields only", t, func() {
		m := provider.StatMap(map[string]interface{}{
			"goals": 10.0, "teamAbbrevs": "EDM", "shots": nil,
		})
		So(m, ShouldResemble, map[string]float64{"goals": 10})
	})
}
