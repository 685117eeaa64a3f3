// Package engine runs the judgement tick: spawn, advance, buffer input,
// judge, clean up, always in that order.
package engine

import (
	"time"

	"git.lost.host/meutraa/cadence/internal/clock"
	"git.lost.host/meutraa/cadence/internal/game"
	"git.lost.host/meutraa/cadence/internal/input"
	"git.lost.host/meutraa/cadence/internal/judge"
	"git.lost.host/meutraa/cadence/internal/scheduler"
	"git.lost.host/meutraa/cadence/internal/score"
	"github.com/charmbracelet/log"
)

// Observer is told about cues entering and leaving play. It must not feed
// anything back into the engine.
type Observer interface {
	OnSpawn(cue *game.Cue)
	OnResolve(cue *game.Cue, j game.Judgement)
}

// Observers fans notifications out in order.
type Observers []Observer

func (o Observers) OnSpawn(cue *game.Cue) {
	for _, ob := range o {
		ob.OnSpawn(cue)
	}
}

func (o Observers) OnResolve(cue *game.Cue, j game.Judgement) {
	for _, ob := range o {
		ob.OnResolve(cue, j)
	}
}

// Options configure an engine.
type Options struct {
	Lanes   game.Lanes
	Widths  scheduler.Widths
	Pairing judge.Pairing
	Logger  *log.Logger
}

// Report is what happened during one tick.
type Report struct {
	Now      time.Duration
	Spawned  []*game.Cue
	Resolved []judge.Resolution
	Complete bool
}

type Engine struct {
	clock  clock.Clock
	source input.Source

	scheduler *scheduler.Scheduler
	live      judge.Registry
	buffer    input.Buffer
	judge     *judge.Judge
	tally     score.Tally
	observer  Observer
	logger    *log.Logger
	complete  bool
}

// New builds an engine for chart. The clock and source are only used by
// Step; Tick may be driven directly.
func New(chart *game.Chart, clk clock.Clock, source input.Source, observer Observer, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		clock:    clk,
		source:   source,
		observer: observer,
		logger:   logger,
	}
	e.scheduler = scheduler.New(chart, opts.Lanes, opts.Widths, logger)
	e.judge = judge.New(opts.Pairing, &e.tally, logger)
	if e.scheduler.Done() {
		e.complete = true
		logger.Info("level complete", "points", 0)
	}
	return e
}

// Step samples the clock once and runs a tick, polling the input source
// after the cues have advanced.
func (e *Engine) Step() Report {
	now := e.clock.Now()
	return e.tick(now, func() []input.Sample {
		if e.source == nil {
			return nil
		}
		return e.source.Poll(now)
	})
}

// Tick advances the whole game to now with the presses of this tick.
func (e *Engine) Tick(now time.Duration, samples []input.Sample) Report {
	return e.tick(now, func() []input.Sample { return samples })
}

func (e *Engine) tick(now time.Duration, poll func() []input.Sample) Report {
	report := Report{Now: now}
	if e.complete {
		report.Complete = true
		return report
	}

	report.Spawned = e.scheduler.Spawn(now)
	e.live.Add(report.Spawned...)
	for _, cue := range report.Spawned {
		e.notifySpawn(cue)
	}

	e.live.Advance(now)

	e.buffer.Add(poll()...)
	report.Resolved = e.judge.Evaluate(e.live.Cues(), e.buffer.Samples())

	for _, cue := range e.live.Sweep() {
		e.tally.Add(game.Miss)
		e.logger.Info("missed", "lane", cue.Note.Lane, "time", cue.Note.Time)
		report.Resolved = append(report.Resolved, judge.Resolution{Cue: cue, Judgement: game.Miss})
	}
	e.buffer.Clear()

	for _, r := range report.Resolved {
		e.notifyResolve(r.Cue, r.Judgement)
	}

	if e.scheduler.Done() && e.live.Len() == 0 {
		e.complete = true
		e.logger.Info("level complete", "points", e.tally.Points)
	}
	report.Complete = e.complete
	return report
}

func (e *Engine) notifySpawn(cue *game.Cue) {
	if e.observer != nil {
		e.observer.OnSpawn(cue)
	}
}

func (e *Engine) notifyResolve(cue *game.Cue, j game.Judgement) {
	if e.observer != nil {
		e.observer.OnResolve(cue, j)
	}
}

// Complete reports whether every note has been spawned and resolved.
func (e *Engine) Complete() bool {
	return e.complete
}

// Tally is the running score.
func (e *Engine) Tally() *score.Tally {
	return &e.tally
}

// Live returns the cues currently in play, in spawn order.
func (e *Engine) Live() []*game.Cue {
	return e.live.Cues()
}
