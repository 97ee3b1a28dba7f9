package symbols

import (
	"fortio.org/safecast"
)

// Scopes — арена областей видимости; data[0] зарезервирован под NoScopeID.
type Scopes struct {
	data []Scope
}

func NewScopes(capHint uint) *Scopes {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Scopes{data: make([]Scope, 1, capHint+1)}
}

func (s *Scopes) Allocate(sc Scope) ScopeID {
	id := ScopeID(safecast.MustConvert[uint32](len(s.data)))
	s.data = append(s.data, sc)
	return id
}

func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

func (s *Scopes) Len() int { return len(s.data) - 1 }

// Symbols — арена символов; data[0] зарезервирован под NoSymbolID.
type Symbols struct {
	data []Symbol
}

func NewSymbols(capHint uint) *Symbols {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Symbols{data: make([]Symbol, 1, capHint+1)}
}

func (s *Symbols) Allocate(sym Symbol) SymbolID {
	id := SymbolID(safecast.MustConvert[uint32](len(s.data)))
	s.data = append(s.data, sym)
	return id
}

func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

func (s *Symbols) Len() int { return len(s.data) - 1 }
