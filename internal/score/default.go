package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultScorer struct {
	db     *sql.DB
	Logger *log.Logger
	now    func() time.Time
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrapf(err, "unable to open results database %s", path)
	}

	initStatement := `
	create table if not exists results
	  (
		  id text not null primary key,
		  sum text not null,
		  points integer not null,
		  counts text not null,
		  played_at integer not null
	  );
	create index if not exists results_sum on results(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create results table")
	}

	s.db = db
	if s.now == nil {
		s.now = time.Now
	}
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		if err := s.db.Close(); err != nil {
			s.Logger.Error("unable to close results database", "err", err)
		}
		s.db = nil
	}
}

// hashChart fingerprints the notes of a chart, so results follow the chart
// rather than the file it came from.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	h := sha256.New()
	for _, n := range c.Notes {
		fmt.Fprintf(h, "%d:%s;", n.Time, n.Lane)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, tally *Tally) (Result, error) {
	result := Result{
		ID:       uuid.New(),
		Sum:      s.hashChart(c),
		Points:   tally.Points,
		Counts:   tally.Counts,
		PlayedAt: s.now(),
	}
	counts, err := json.Marshal(result.Counts)
	if nil != err {
		return result, errors.Wrap(err, "unable to marshal judgement counts")
	}
	_, err = s.db.Exec("insert into results(id, sum, points, counts, played_at) values(?, ?, ?, ?, ?)",
		result.ID.String(), result.Sum, result.Points, string(counts), result.PlayedAt.UnixNano())
	if nil != err {
		return result, errors.Wrap(err, "unable to save result")
	}
	s.Logger.Debug("saved result", "id", result.ID, "points", result.Points)
	return result, nil
}

func (s *DefaultScorer) Load(c *game.Chart) ([]Result, error) {
	results := []Result{}
	rows, err := s.db.Query("select id, sum, points, counts, played_at from results where sum = ? order by played_at desc", s.hashChart(c))
	if nil != err {
		return results, errors.Wrap(err, "unable to load results")
	}
	defer rows.Close()
	for rows.Next() {
		var id, sum, counts string
		var points int
		var playedAt int64
		if err := rows.Scan(&id, &sum, &points, &counts, &playedAt); err != nil {
			return results, errors.Wrap(err, "unable to scan result")
		}
		result := Result{Sum: sum, Points: points, PlayedAt: time.Unix(0, playedAt)}
		if result.ID, err = uuid.Parse(id); err != nil {
			s.Logger.Warn("skipping result with bad id", "id", id)
			continue
		}
		if err := json.Unmarshal([]byte(counts), &result.Counts); err != nil {
			s.Logger.Warn("skipping result with bad counts", "id", id)
			continue
		}
		results = append(results, result)
	}
	return results, errors.Wrap(rows.Err(), "unable to read results")
}
