package parser

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"github.com/pkg/errors"
)

// Parser reads a song file into its raw notes.
type Parser interface {
	Parse(file string) (*Song, error)
}

// Song is a parsed song before its notes are assigned to lanes.
type Song struct {
	Title string
	BPM   float64 // zero when the file carries no tempo
	Notes []SongNote
}

// SongNote is a note as written in the song: a start time and a name
// such as "C#1".
type SongNote struct {
	Time time.Duration
	Name string
}

// ForFile picks a parser by file extension.
func ForFile(file string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return &JSONParser{}, nil
	case ".mid", ".midi":
		return &MIDIParser{}, nil
	}
	return nil, errors.Errorf("no parser for %s", file)
}

// Options control how a song becomes a chart.
type Options struct {
	NoteMap        map[string]string // note name -> lane id
	CueOffsetBeats float64
	BPM            float64 // used when the song has no tempo
}

// Build places every note of the song on the chart. Note times are snapped
// to the Measure-Beat-Tick grid. Notes without a mapping keep their name as
// their lane id.
func Build(song *Song, opts Options) *game.Chart {
	bpm := song.BPM
	if bpm <= 0 {
		bpm = opts.BPM
	}
	beat := time.Duration(float64(time.Minute) / bpm)

	notes := make([]*game.Note, 0, len(song.Notes))
	for _, n := range song.Notes {
		beats := n.Time.Seconds() * bpm / 60
		// guard against 2.9999999 beats landing a tick early
		beats = math.Round(beats*game.TicksPerBeat*1e6) / (game.TicksPerBeat * 1e6)
		pos := game.FromBeats(beats)

		lane, ok := opts.NoteMap[n.Name]
		if !ok {
			lane = n.Name
		}
		notes = append(notes, &game.Note{Time: pos.Duration(beat), Lane: lane})
	}
	return game.NewChart(song.Title, notes, opts.CueOffsetBeats, beat)
}

// Load parses file with the parser for its extension and builds the chart.
func Load(file string, opts Options) (*game.Chart, error) {
	p, err := ForFile(file)
	if err != nil {
		return nil, err
	}
	song, err := p.Parse(file)
	if err != nil {
		return nil, err
	}
	if song.Title == "" {
		song.Title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return Build(song, opts), nil
}

var noteNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName names a MIDI key, with middle C (60) as C4.
func NoteName(key uint8) string {
	return noteNames[key%12] + strconv.Itoa(int(key)/12-1)
}
