package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/cadence/internal/clock"
	"git.lost.host/meutraa/cadence/internal/clock/audio"
	"git.lost.host/meutraa/cadence/internal/config"
	"git.lost.host/meutraa/cadence/internal/input"
	"git.lost.host/meutraa/cadence/internal/render"
	"git.lost.host/meutraa/cadence/internal/score"
	"git.lost.host/meutraa/cadence/internal/theme"
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

func main() {
	if err := run(); nil != err {
		log.Fatal(err)
	}
}

func newLogger(c *config.Config) (*log.Logger, func(), error) {
	out, closer := os.Stderr, func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if nil != err {
			return nil, nil, errors.Wrap(err, "unable to open log file")
		}
		out, closer = f, func() { f.Close() }
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cadence",
	})
	level, err := log.ParseLevel(c.LogLevel)
	if nil != err {
		closer()
		return nil, nil, &config.ConfigurationError{Field: "log-level", Reason: err.Error()}
	}
	logger.SetLevel(level)
	return logger, closer, nil
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, err
	}
	switch filepath.Ext(file) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return mp3.Decode(f)
	}
}

func run() error {
	c, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	logger, closeLog, err := newLogger(c)
	if nil != err {
		return err
	}
	defer closeLog()

	scorer := &score.DefaultScorer{Logger: logger}
	p := &Program{
		Config:   c,
		Renderer: &render.DefaultRenderer{},
		Theme:    &theme.DefaultTheme{},
		Scorer:   scorer,
		Logger:   logger,
	}
	if err := p.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	var clk clock.Clock
	var streamer beep.StreamSeekCloser
	if file := findAudio(c.Song); file != "" && !c.Silent {
		var format beep.Format
		streamer, format, err = decode(file)
		if nil != err {
			return errors.Wrapf(err, "unable to decode %v", file)
		}
		defer streamer.Close()
		logger.Info("opening audio", "file", file, "rate", format.SampleRate)

		playback := beep.SampleRate(math.Round(float64(format.SampleRate) * c.Rate))
		if err := speaker.Init(playback, playback.N(time.Second/60)); nil != err {
			return errors.Wrap(err, "unable to open speaker")
		}
		clk = audio.NewStream(streamer, format, c.Rate, p.Chart().BPM, c.Offset, true)
	} else {
		clk = clock.NewWall(time.Now().Add(c.Delay), p.Chart().BPM, c.Offset)
	}

	presses := make(chan input.Press, 128)
	if err := input.ReadKeyboard(presses, logger); nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.Error("unable to close keyboard", "err", err)
		}
	}()

	if err := p.Renderer.Init(); nil != err {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	p.Start(clk, input.NewChannelSource(presses))

	if streamer != nil {
		go func() {
			time.Sleep(c.Delay)
			speaker.Play(streamer)
		}()
	}

	p.Renderer.RenderLoop(c.FramePeriod, func(_ time.Time) bool {
		if !p.Update() {
			return false
		}
		p.Render(clk.Now())
		return true
	})

	if err := p.Renderer.Deinit(); nil != err {
		logger.Error("unable to restore terminal", "err", err)
	}

	previous, err := p.Finish()
	if nil != err {
		return err
	}
	tally := p.engine.Tally()
	fmt.Printf("%v: %v points, %v judged\n", p.Chart().Title, tally.Points, tally.Judged())
	for _, r := range previous {
		fmt.Printf("  %v  %6v  %v\n", r.PlayedAt.Format("2006-01-02 15:04"), r.Points, r.ID)
	}
	return nil
}
