package theme

import "git.lost.host/meutraa/cadence/internal/game"

type Theme interface {
	RenderCue(lane int, state game.CueState) string
	RenderJudgement(j game.Judgement) string
	RenderHitField(lane int) string
}
