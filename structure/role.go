// Package structure defines the standard structure-type roles used by
// the tagged-PDF structure tree (PDF 1.7 §14.8.4). The tree itself —
// items, parent links, the parent tree keyed by structparent index — is
// built by the document package, which owns the indirect-object
// numbering all structure items ultimately need.
package structure

import pdf "github.com/tmr232/capypdf"

// Role is a standard PDF structure type, written as a dictionary's /S
// entry.
type Role pdf.Name

const (
	RoleDocument Role = "Document"
	RolePart     Role = "Part"
	RoleArt      Role = "Art"
	RoleSect     Role = "Sect"
	RoleDiv      Role = "Div"
	RoleH1       Role = "H1"
	RoleH2       Role = "H2"
	RoleH3       Role = "H3"
	RoleH4       Role = "H4"
	RoleH5       Role = "H5"
	RoleH6       Role = "H6"
	RoleP        Role = "P"
	RoleSpan     Role = "Span"
	RoleLink     Role = "Link"
	RoleFigure   Role = "Figure"
	RoleTable    Role = "Table"
	RoleTR       Role = "TR"
	RoleTH       Role = "TH"
	RoleTD       Role = "TD"
	RoleList     Role = "L"
	RoleListItem Role = "LI"
	RoleLBody    Role = "LBody"
)
