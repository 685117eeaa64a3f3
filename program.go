package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/cadence/internal/clock"
	"git.lost.host/meutraa/cadence/internal/config"
	"git.lost.host/meutraa/cadence/internal/engine"
	"git.lost.host/meutraa/cadence/internal/game"
	"git.lost.host/meutraa/cadence/internal/input"
	"git.lost.host/meutraa/cadence/internal/parser"
	"git.lost.host/meutraa/cadence/internal/render"
	"git.lost.host/meutraa/cadence/internal/score"
	"git.lost.host/meutraa/cadence/internal/theme"
	"github.com/charmbracelet/log"
)

const (
	barOffsetFromBottom = 4
	columnSpacing       = 6
	decorationFrames    = 240
)

// Program draws the game in the terminal. It only observes the engine.
type Program struct {
	Config   *config.Config
	Renderer render.Renderer
	Theme    theme.Theme
	Scorer   score.Scorer
	Logger   *log.Logger

	chart  *game.Chart
	engine *engine.Engine
	clock  clock.Clock
	source *input.ChannelSource

	width, height int
	hitRow        int
	sideCol       int
	rowTime       time.Duration // track time covered by one row

	drawn  map[*game.Cue]int // row each cue was last drawn on
	counts [game.NumJudgements]int
}

func (p *Program) Resize() {
	p.width, p.height = p.Renderer.Size()
	p.hitRow = p.height - barOffsetFromBottom
	p.sideCol = p.column(0) - 24
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	lead := time.Duration(p.Config.CueOffsetBeats * float64(p.clock.BeatLength()))
	p.rowTime = time.Millisecond
	if p.hitRow > 1 && lead > 0 {
		p.rowTime = lead / time.Duration(p.hitRow-1)
	}
}

func (p *Program) column(lane int) int {
	n := len(p.Config.Lanes)
	return p.width/2 + (2*lane-(n-1))*columnSpacing/2
}

// Init loads the song and the results database.
func (p *Program) Init() error {
	chart, err := parser.Load(p.Config.Song, parser.Options{
		NoteMap:        p.Config.NoteMap,
		CueOffsetBeats: p.Config.CueOffsetBeats,
		BPM:            p.Config.BPM,
	})
	if nil != err {
		return err
	}
	p.chart = chart
	p.Logger.Info("loaded song", "title", chart.Title, "notes", len(chart.Notes), "bpm", chart.BPM)

	if err := p.Scorer.Init(p.Config.Database); nil != err {
		return err
	}
	p.drawn = make(map[*game.Cue]int)
	return nil
}

func (p *Program) Chart() *game.Chart { return p.chart }

// Start builds the engine on the given clock and input.
func (p *Program) Start(clk clock.Clock, source *input.ChannelSource) {
	p.clock = clk
	p.source = source
	p.engine = engine.New(p.chart, clk, source, p, engine.Options{
		Lanes:   p.Config.LaneSet(),
		Widths:  p.Config.Widths(),
		Pairing: p.Config.PairingStrategy(),
		Logger:  p.Logger,
	})
	p.Resize()
}

func (p *Program) OnSpawn(cue *game.Cue) {}

func (p *Program) OnResolve(cue *game.Cue, j game.Judgement) {
	p.counts[j]++
	if row, ok := p.drawn[cue]; ok {
		p.Renderer.Fill(row, p.cueColumn(cue), " ")
		delete(p.drawn, cue)
	}
	p.Renderer.AddDecoration(p.cueColumn(cue)-3, p.hitRow+2, p.Theme.RenderJudgement(j), decorationFrames)
}

func (p *Program) cueColumn(cue *game.Cue) int {
	if cue.Lane.Index < 0 {
		return p.sideCol
	}
	return p.column(cue.Lane.Index)
}

// Update runs one tick and reports whether to keep going.
func (p *Program) Update() bool {
	report := p.engine.Step()
	return !report.Complete && !p.source.Quit()
}

func (p *Program) Render(now time.Duration) {
	for i := range p.Config.Lanes {
		p.Renderer.Fill(p.hitRow, p.column(i), p.Theme.RenderHitField(i))
	}

	for _, cue := range p.engine.Live() {
		col := p.cueColumn(cue)
		if row, ok := p.drawn[cue]; ok {
			p.Renderer.Fill(row, col, " ")
		}
		row := p.hitRow - int((cue.Note.Time-now)/p.rowTime)
		if row > 0 && row < p.height {
			p.Renderer.Fill(row, col, p.Theme.RenderCue(cue.Lane.Index, cue.State))
			p.drawn[cue] = row
		} else {
			delete(p.drawn, cue)
		}
	}

	tally := p.engine.Tally()
	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("%v", p.chart.Title))
	p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("   Time:  %8.2fs", now.Seconds()))
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("  Score:  %8v", tally.Points))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf("   Live:  %8v", len(p.engine.Live())))
	for i, j := range game.Judgements {
		p.Renderer.Fill(8+i, p.sideCol, fmt.Sprintf("%s:  %6v", p.Theme.RenderJudgement(j), p.counts[j]))
	}
}

// Finish stores the result and returns the earlier results for the song.
func (p *Program) Finish() ([]score.Result, error) {
	tally := p.engine.Tally()
	previous, err := p.Scorer.Load(p.chart)
	if nil != err {
		return nil, err
	}
	if _, err := p.Scorer.Save(p.chart, tally); nil != err {
		return previous, err
	}
	return previous, nil
}

// findAudio returns the audio file next to the song, if there is one.
func findAudio(song string) string {
	var audio string
	dir := filepath.Dir(song)
	base := strings.TrimSuffix(filepath.Base(song), filepath.Ext(song))
	filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && p != dir {
			return filepath.SkipDir
		}
		switch path.Ext(info.Name()) {
		case ".ogg", ".mp3", ".wav":
			name := strings.TrimSuffix(info.Name(), path.Ext(info.Name()))
			if audio == "" || name == base {
				audio = p
			}
		}
		return nil
	})
	return audio
}
