package input

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
)

// Press is a raw key press, before it has been tied to a tick.
type Press struct {
	Lane string
	Esc  bool
}

// ChannelSource drains presses delivered by a reader goroutine. It is the
// only point where the reader and the tick loop meet.
type ChannelSource struct {
	presses <-chan Press
	quit    bool
}

func NewChannelSource(presses <-chan Press) *ChannelSource {
	return &ChannelSource{presses: presses}
}

func (s *ChannelSource) Poll(now time.Duration) []Sample {
	var samples []Sample
	for {
		select {
		case p, ok := <-s.presses:
			if !ok {
				return samples
			}
			if p.Esc {
				s.quit = true
				continue
			}
			samples = append(samples, Sample{Lane: p.Lane, Time: now})
		default:
			return samples
		}
	}
}

// Quit reports whether escape has been pressed.
func (s *ChannelSource) Quit() bool {
	return s.quit
}

// ReadKeyboard forwards key presses from the terminal to presses until the
// keyboard is closed. Runes are used as lane ids; the caller must call
// keyboard.Close when done.
func ReadKeyboard(presses chan<- Press, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	go func() {
		defer close(presses)
		for ev := range keys {
			if ev.Err != nil {
				logger.Error("unable to read keyboard input", "err", ev.Err)
				return
			}
			if ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC {
				presses <- Press{Esc: true}
				continue
			}
			if ev.Rune == 0 {
				continue
			}
			presses <- Press{Lane: string(ev.Rune)}
		}
	}()
	return nil
}
