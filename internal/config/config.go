// Package config holds the options of a level and parses them from the
// command line.
package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"git.lost.host/meutraa/cadence/internal/judge"
	"git.lost.host/meutraa/cadence/internal/scheduler"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Song string

	// Full widths of the accuracy windows, OkWindow >= GoodWindow >= PerfectWindow
	OkWindow      time.Duration
	GoodWindow    time.Duration
	PerfectWindow time.Duration

	// Beats before a note that it becomes live
	CueOffsetBeats float64

	Pairing string
	Lanes   []string
	NoteMap map[string]string // note name -> lane id

	BPM         float64 // used when the song does not carry a tempo
	Rate        float64
	Offset      time.Duration
	Delay       time.Duration
	FramePeriod time.Duration
	Database    string
	LogLevel    string
	LogFile     string
	Silent      bool
}

// DefaultNoteMap mirrors the seven key keyboard layout.
var DefaultNoteMap = map[string]string{
	"C1":  "w",
	"C#1": "q",
	"D1":  "f",
	"D#1": "d",
	"E1":  "s",
	"F1":  "a",
	"F#1": "v",
}

var DefaultLanes = []string{"w", "q", "f", "d", "s", "a", "v"}

func Default() *Config {
	noteMap := make(map[string]string, len(DefaultNoteMap))
	for k, v := range DefaultNoteMap {
		noteMap[k] = v
	}
	return &Config{
		OkWindow:       200 * time.Millisecond,
		GoodWindow:     100 * time.Millisecond,
		PerfectWindow:  50 * time.Millisecond,
		CueOffsetBeats: 2,
		Pairing:        "all",
		Lanes:          append([]string(nil), DefaultLanes...),
		NoteMap:        noteMap,
		BPM:            120,
		Rate:           1,
		Delay:          1500 * time.Millisecond,
		FramePeriod:    time.Millisecond,
		Database:       "./scores.db",
		LogLevel:       "info",
	}
}

// Parse reads the command line into a validated Config.
func Parse(args []string) (*Config, error) {
	c := Default()
	app := kingpin.New("cadence", "Judge a rhythm chart against keyboard input.")
	app.Version(Version)

	app.Arg("song", "Song file (.json or .mid)").Required().ExistingFileVar(&c.Song)
	app.Flag("ok-window", "Width of the OK window").Default("200ms").DurationVar(&c.OkWindow)
	app.Flag("good-window", "Width of the Good window").Default("100ms").DurationVar(&c.GoodWindow)
	app.Flag("perfect-window", "Width of the Perfect window").Default("50ms").DurationVar(&c.PerfectWindow)
	app.Flag("cue-offset", "Beats before a note that it appears").Default("2").Float64Var(&c.CueOffsetBeats)
	app.Flag("pairing", "How presses pair with stacked notes").Default("all").EnumVar(&c.Pairing, judge.Pairings()...)
	lanes := app.Flag("lane", "Input lane id, repeatable, left to right").Short('l').Strings()
	notes := app.Flag("note", "Map a note name to a lane, NOTE=LANE, repeatable").Short('n').StringMap()
	app.Flag("bpm", "Tempo used when the song has none").Default("120").Float64Var(&c.BPM)
	app.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64Var(&c.Rate)
	app.Flag("offset", "Global offset").Default("0ms").Short('o').DurationVar(&c.Offset)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&c.Delay)
	app.Flag("frame-period", "Tick period").Default("1ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("database", "Results database").Default("./scores.db").StringVar(&c.Database)
	app.Flag("log-level", "debug, info, warn or error").Default("info").EnumVar(&c.LogLevel, "debug", "info", "warn", "error")
	app.Flag("log-file", "Write logs here instead of stderr").StringVar(&c.LogFile)
	app.Flag("silent", "Do not play audio, follow the wall clock").BoolVar(&c.Silent)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if len(*lanes) > 0 {
		c.Lanes = *lanes
	}
	for note, lane := range *notes {
		c.NoteMap[note] = lane
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ConfigurationError is a setting that makes a level impossible to run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the settings before any tick runs.
func (c *Config) Validate() error {
	switch {
	case c.PerfectWindow < 0:
		return &ConfigurationError{"perfect-window", "must not be negative"}
	case c.OkWindow < c.GoodWindow:
		return &ConfigurationError{"ok-window", fmt.Sprintf("%v is narrower than the good window %v", c.OkWindow, c.GoodWindow)}
	case c.GoodWindow < c.PerfectWindow:
		return &ConfigurationError{"good-window", fmt.Sprintf("%v is narrower than the perfect window %v", c.GoodWindow, c.PerfectWindow)}
	case c.CueOffsetBeats < 0:
		return &ConfigurationError{"cue-offset", "a negative lead puts cues after their notes"}
	case len(c.Lanes) == 0:
		return &ConfigurationError{"lane", "at least one lane is required"}
	case c.Rate <= 0:
		return &ConfigurationError{"rate", "must be positive"}
	case c.BPM <= 0:
		return &ConfigurationError{"bpm", "must be positive"}
	}
	seen := make(map[string]bool, len(c.Lanes))
	for _, l := range c.Lanes {
		if l == "" {
			return &ConfigurationError{"lane", "lane ids must not be empty"}
		}
		if seen[l] {
			return &ConfigurationError{"lane", fmt.Sprintf("%q is configured twice", l)}
		}
		seen[l] = true
	}
	if _, err := judge.ParsePairing(c.Pairing); err != nil {
		return &ConfigurationError{"pairing", err.Error()}
	}
	return nil
}

func (c *Config) Widths() scheduler.Widths {
	return scheduler.Widths{OK: c.OkWindow, Good: c.GoodWindow, Perfect: c.PerfectWindow}
}

func (c *Config) LaneSet() game.Lanes {
	return game.NewLanes(c.Lanes)
}

// PairingStrategy is the parsed pairing. Validate must have passed.
func (c *Config) PairingStrategy() judge.Pairing {
	p, _ := judge.ParsePairing(c.Pairing)
	return p
}
