package symbols

// Namespace разделяет имена типов и значений: модуль и функция с одним
// именем сосуществуют, конфликт возможен только внутри одного пространства.
type Namespace uint8

const (
	NsTypes  Namespace = iota // mod, struct, enum, type
	NsValues                  // fn, const
	nsCount
)

func (ns Namespace) String() string {
	switch ns {
	case NsTypes:
		return "type"
	case NsValues:
		return "value"
	default:
		return "unknown"
	}
}
