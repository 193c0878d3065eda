package service

import "github.com/mwhite7112/woodpantry-shoppinglist/internal/parser"

// Parser reads a quantity and unit from a raw ingredient line. It must be
// deterministic and free of side effects.
type Parser interface {
	Parse(text string) parser.Result
}

// Service holds all dependencies for the aggregation engine. It keeps no
// state between calls and is safe for concurrent use.
type Service struct {
	parser Parser
}

// New creates a new Service. A nil Parser selects the default parser.
func New(p Parser) *Service {
	if p == nil {
		p = parser.New()
	}
	return &Service{parser: p}
}
