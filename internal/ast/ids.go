package ast

type (
	// главные сущености
	FileID    uint32
	ItemID    uint32
	UseTreeID uint32
	// подсущности
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoItemID    ItemID    = 0
	NoUseTreeID UseTreeID = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id ItemID) IsValid() bool    { return id != NoItemID }
func (id UseTreeID) IsValid() bool { return id != NoUseTreeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
