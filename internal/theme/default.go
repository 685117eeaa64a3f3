package theme

import (
	"fmt"

	"git.lost.host/meutraa/cadence/internal/game"
)

type DefaultTheme struct {
}

type color struct {
	R, G, B uint8
}

func (c color) paint(s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderCue(lane int, state game.CueState) string {
	return getStateColor(state).paint(syms[lane%len(syms)])
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	name, ok := judgementNames[j]
	if !ok {
		return j.String()
	}
	return name
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSyms[lane%len(barSyms)]
}

var (
	syms        = [...]string{"⬤", "◆", "⬤", "◆", "⬤", "◆", "⬤"}
	barSyms     = [...]string{"-", "=", "-", "=", "-", "=", "-"}
	stateColors = map[game.CueState]color{
		game.Early:     {106, 106, 106}, // grey
		game.InOK:      {0, 118, 236},   // blue
		game.InGood:    {0, 236, 128},   // green
		game.InPerfect: {236, 195, 0},   // yellow
		game.Late:      {236, 30, 0},    // red
	}
	judgementNames = map[game.Judgement]string{
		game.Perfect: "\033[1;33mPerfect\033[0m",
		game.Good:    "   \033[1;32mGood\033[0m",
		game.OK:      "     \033[1;36mOK\033[0m",
		game.Miss:    "   \033[1;31mMiss\033[0m",
	}
)

func getStateColor(s game.CueState) color {
	col, ok := stateColors[s]
	if !ok {
		return color{255, 255, 255}
	}
	return col
}
