package parser

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// JSONParser reads songs converted from MIDI to JSON, with note times in
// seconds:
//
//	{"header": {"bpm": 120}, "tracks": [{"notes": [{"name": "C1", "time": 0.5}]}]}
type JSONParser struct{}

type jsonSong struct {
	Header struct {
		Name   string  `json:"name"`
		BPM    float64 `json:"bpm"`
		Tempos []struct {
			BPM float64 `json:"bpm"`
		} `json:"tempos"`
	} `json:"header"`
	Tracks []struct {
		Notes []struct {
			Name string  `json:"name"`
			Time float64 `json:"time"`
		} `json:"notes"`
	} `json:"tracks"`
}

func (p *JSONParser) Parse(file string) (*Song, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read song")
	}
	return p.parse(data)
}

func (p *JSONParser) parse(data []byte) (*Song, error) {
	var js jsonSong
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, errors.Wrap(err, "unable to decode song")
	}

	song := &Song{Title: js.Header.Name, BPM: js.Header.BPM}
	if song.BPM == 0 && len(js.Header.Tempos) > 0 {
		song.BPM = js.Header.Tempos[0].BPM
	}
	for _, track := range js.Tracks {
		for _, n := range track.Notes {
			if n.Time < 0 {
				return nil, errors.Errorf("note %s has negative time %v", n.Name, n.Time)
			}
			song.Notes = append(song.Notes, SongNote{
				Time: time.Duration(n.Time * float64(time.Second)),
				Name: n.Name,
			})
		}
	}
	sort.SliceStable(song.Notes, func(i, j int) bool {
		return song.Notes[i].Time < song.Notes[j].Time
	})
	return song, nil
}
