package parser

import "git.lost.host/meutraa/maniac/internal/game"

type Parser interface {
	Parse(name string, text string) (*game.Chart, error)
}
