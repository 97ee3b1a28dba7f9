package symbols

// ScopeID — индекс в арене областей видимости. 0 — невалидный ID.
type ScopeID uint32

// SymbolID — индекс в арене символов. 0 — невалидный ID.
type SymbolID uint32

const (
	NoScopeID  ScopeID  = 0
	NoSymbolID SymbolID = 0
)

func (id ScopeID) IsValid() bool  { return id != NoScopeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
