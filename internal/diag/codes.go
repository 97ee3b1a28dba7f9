package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedBrace      Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectIdentifier   Code = 2004
	SynUnexpectedTopLevel Code = 2005

	// use-деревья
	SynExpectUseSeg      Code = 2100
	SynExpectItemAfterAs Code = 2101
	SynEmptyUseGroup     Code = 2102
	SynExpectUseTree     Code = 2103

	// Разрешение имён
	ResInfo              Code = 3000
	ResDuplicateName     Code = 3001
	ResRedundantImport   Code = 3002
	ResUnresolvedImport  Code = 3003
	ResImportCycle       Code = 3004
	ResNotVisible        Code = 3005
	ResNotAModule        Code = 3006
	ResTooManySupers     Code = 3007
	ResMarkerPosition    Code = 3008
	ResSelfNotInGroup    Code = 3009
	ResSelfInGroupAtRoot Code = 3010
	ResSelfNeedsAlias    Code = 3011

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Ошибки раскладки модулей по файлам
	ModInfo          Code = 5000
	ModFileNotFound  Code = 5001
	ModFileAmbiguous Code = 5002
	ModInFnNoBody    Code = 5003
	ModDuplicateFile Code = 5004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectSemicolon:          "Expect semicolon",
	SynExpectIdentifier:         "Expect identifier",
	SynUnexpectedTopLevel:       "Unexpected top level item",
	SynExpectUseSeg:             "Expect use path segment",
	SynExpectItemAfterAs:        "Expect identifier after as",
	SynEmptyUseGroup:            "Empty use group",
	SynExpectUseTree:            "Expect use tree",
	ResInfo:                     "Resolution information",
	ResDuplicateName:            "Name defined multiple times",
	ResRedundantImport:          "Name imported multiple times",
	ResUnresolvedImport:         "Unresolved import",
	ResImportCycle:              "Import cycle",
	ResNotVisible:               "Item is not visible",
	ResNotAModule:               "Path segment is not a module",
	ResTooManySupers:            "Too many super keywords",
	ResMarkerPosition:           "Special identifier not at start of path",
	ResSelfNotInGroup:           "self usage outside of use group",
	ResSelfInGroupAtRoot:        "self usage in use group at path root",
	ResSelfNeedsAlias:           "self import requires an alias",
	IOLoadFileError:             "I/O load file error",
	ModInfo:                     "Module layout information",
	ModFileNotFound:             "Module file not found",
	ModFileAmbiguous:            "Conflicting module files",
	ModInFnNoBody:               "Module in function lacks body",
	ModDuplicateFile:            "Duplicate module file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("MOD%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
