// Package testdata holds a small song shared by tests.
package testdata

import (
	"os"
	"path/filepath"
)

// Song is a one measure song at 120 bpm: four quarter notes over two lanes,
// a chord on the last beat and one note with no lane mapping.
const Song = `{
	"header": {"name": "four on the floor", "bpm": 120},
	"tracks": [
		{"name": "keys", "notes": [
			{"name": "C1",  "midi": 24, "time": 0.0,   "duration": 0.25},
			{"name": "C#1", "midi": 25, "time": 0.5,   "duration": 0.25},
			{"name": "C1",  "midi": 24, "time": 1.0,   "duration": 0.25},
			{"name": "C1",  "midi": 24, "time": 1.5,   "duration": 0.25},
			{"name": "C#1", "midi": 25, "time": 1.5,   "duration": 0.25}
		]},
		{"name": "fx", "notes": [
			{"name": "G9",  "midi": 127, "time": 1.25, "duration": 0.1}
		]}
	]
}`

// WriteSong writes Song to dir and returns its path.
func WriteSong(dir string) (string, error) {
	p := filepath.Join(dir, "song.json")
	if err := os.WriteFile(p, []byte(Song), 0o644); nil != err {
		return "", err
	}
	return p, nil
}
