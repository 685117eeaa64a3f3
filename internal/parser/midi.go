package parser

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIParser reads note starts from a Standard MIDI File. Every track is
// read; the tempo is taken from the first tempo change.
type MIDIParser struct{}

func (p *MIDIParser) Parse(file string) (*Song, error) {
	song := &Song{}
	var channel, key, velocity uint8
	var bpm float64
	var name string

	rd := smf.ReadTracks(file).Do(func(te smf.TrackEvent) {
		msg := te.Message
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			song.Notes = append(song.Notes, SongNote{
				Time: time.Duration(te.AbsMicroSeconds) * time.Microsecond,
				Name: NoteName(key),
			})
		case song.BPM == 0 && msg.GetMetaTempo(&bpm):
			song.BPM = bpm
		case song.Title == "" && msg.GetMetaTrackName(&name):
			song.Title = name
		}
	})
	if err := rd.Error(); err != nil {
		return nil, errors.Wrapf(err, "unable to read midi file %s", file)
	}

	sort.SliceStable(song.Notes, func(i, j int) bool {
		return song.Notes[i].Time < song.Notes[j].Time
	})
	return song, nil
}
