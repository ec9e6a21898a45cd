package nhl_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/provider/nhl"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

const skaterSummary = `{"data":[
  {"playerId":8478402,"skaterFullName":"Connor McDavid","teamAbbrevs":"EDM","positionCode":"C","goals":32,"points":132,"shots":268,"gamesPlayed":76},
  {"playerId":8477934,"skaterFullName":"Leon Draisaitl","teamAbbrevs":"EDM","positionCode":"C","goals":41,"points":106,"shots":null,"gamesPlayed":81}
],"total":2}`

const goalieSummary = `{"data":[
  {"playerId":8476945,"goalieFullName":"Connor Hellebuyck","teamAbbrevs":"WPG","saves":1955,"wins":37,"gamesPlayed":60}
],"total":1}`

const goalieLog = `{"seasonId":20232024,"gameLog":[
  {"gameId":2023021300,"gameDate":"2024-04-18","opponentAbbrev":"SEA","toi":"60:00","shotsAgainst":31,"goalsAgainst":2},
  {"gameId":2023021280,"gameDate":"2024-04-16","opponentAbbrev":"VAN","toi":"58:41","saves":22}
]}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(srv *httptest.Server) *nhl.Client {
	return nhl.NewClient(nhl.Options{
		StatsBaseURL:      srv.URL + "/stats/rest/en",
		WebBaseURL:        srv.URL + "/v1",
		RequestsPerMinute: 60000,
	}, quietLogger())
}

func TestGetSummaries(t *testing.T) {
	Convey("Given a stats API returning skater and goalie summaries", t, func() {
		var lastQuery, lastPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQuery = r.URL.RawQuery
			switch {
			case strings.HasSuffix(r.URL.Path, "/skater/summary"):
				io.WriteString(w, skaterSummary)
			case strings.HasSuffix(r.URL.Path, "/goalie/summary"):
				io.WriteString(w, goalieSummary)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()
		client := newClient(srv)
		ctx := context.Background()

		Convey("When fetching skaters", func() {
			players, err := client.GetSummaries(ctx, provider.Skater, season.ID("20232024"))

			Convey("Then the request asks for regular season, unlimited, sorted by name", func() {
				So(err, ShouldBeNil)
				So(lastPath, ShouldEqual, "/stats/rest/en/skater/summary")
				So(lastQuery, ShouldContainSubstring, "limit=-1")
				So(lastQuery, ShouldContainSubstring, "isAggregate=false")
				So(lastQuery, ShouldContainSubstring, "sort=skaterFullName")
				So(lastQuery, ShouldContainSubstring, "seasonId%3D20232024%20and%20gameTypeId%3D2")
			})

			Convey("And rows keep API order and normalize nulls to zero", func() {
				So(players, ShouldHaveLength, 2)
				So(players[0].Name, ShouldEqual, "Connor McDavid")
				So(players[0].Position, ShouldEqual, "C")
				So(players[0].Points, ShouldEqual, 132)
				So(players[0].Season, ShouldEqual, season.ID("20232024"))
				So(players[1].Shots, ShouldEqual, 0)
				So(players[1].Category, ShouldEqual, provider.Skater)
			})
		})

		Convey("When fetching goalies", func() {
			players, err := client.GetSummaries(ctx, provider.Goalie, season.ID("20232024"))

			So(err, ShouldBeNil)
			So(lastQuery, ShouldContainSubstring, "sort=wins")
			So(players, ShouldHaveLength, 1)
			So(players[0].Name, ShouldEqual, "Connor Hellebuyck")
			So(players[0].Position, ShouldEqual, "G")
			So(players[0].Saves, ShouldEqual, 1955)
			So(players[0].Tracked(), ShouldEqual, 1955)
		})
	})

	Convey("Given a response without a data field", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"total":0}`)
		}))
		defer srv.Close()

		players, err := newClient(srv).GetSummaries(context.Background(), provider.Skater, season.ID("19171918"))
		So(err, ShouldBeNil)
		So(players, ShouldBeEmpty)
	})

	Convey("Given a failing stats API", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "upstream down")
		}))
		defer srv.Close()

		_, err := newClient(srv).GetSummaries(context.Background(), provider.Goalie, season.ID("20232024"))
		So(err, ShouldNotBeNil)
		So(errors.Is(err, nhl.ErrUnexpectedStatus), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "502")
	})

	Convey("Given a malformed summary body", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"data":`)
		}))
		defer srv.Close()

		_, err := newClient(srv).GetSummaries(context.Background(), provider.Skater, season.ID("20232024"))
		So(err, ShouldNotBeNil)
	})
}

func TestGetGameLog(t *testing.T) {
	Convey("Given a web API serving one goalie log and failing everything else", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/player/8476945/game-log/20232024/2":
				io.WriteString(w, goalieLog)
			case "/v1/player/1/game-log/20232024/2":
				io.WriteString(w, `not json`)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()
		client := newClient(srv)
		ctx := context.Background()

		Convey("When the log exists, saves are taken or derived from shots against", func() {
			games := client.GetGameLog(ctx, 8476945, season.ID("20232024"))
			So(games, ShouldHaveLength, 2)
			So(games[0].Opponent, ShouldEqual, "SEA")
			So(games[0].Saves, ShouldEqual, 29)
			So(games[1].Saves, ShouldEqual, 22)
			So(games[1].TOI, ShouldEqual, "58:41")
		})

		Convey("When the season does not exist, no games are returned", func() {
			So(client.GetGameLog(ctx, 8476945, season.ID("19991900")), ShouldBeEmpty)
		})

		Convey("When the body is malformed, no games are returned", func() {
			So(client.GetGameLog(ctx, 1, season.ID("20232024")), ShouldBeEmpty)
		})

		Convey("When the context is already cancelled, no games are returned", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			So(client.GetGameLog(cctx, 8476945, season.ID("20232024")), ShouldBeEmpty)
		})
	})
}
