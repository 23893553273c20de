package document

import (
	"sort"

	"github.com/tmr232/capypdf/structure"

	pdf "github.com/tmr232/capypdf"
)

// structItemEntry is one node of the structure tree: a role plus a
// parent link. Children are recovered at resolve time by scanning for
// entries whose Parent equals a given StructID, rather than maintaining
// an owned child-pointer tree.
type structItemEntry struct {
	role     structure.Role
	parent   StructID // -1 for the root
	ref      Reference
	pageMCID []mcidRef // (page index, mcid) pairs tagging content to this item
}

type mcidRef struct {
	page int
	mcid int
}

// RootStructID is the parent value designating a top-level structure
// item (one with no structure-tree parent of its own).
const RootStructID StructID = -1

// DefineRoleMap adds a /RoleMap entry mapping a custom structure role
// name onto one of the standard roles in the structure package,
// failing with RoleAlreadyDefined if custom was already mapped.
func (d *Document) DefineRoleMap(custom structure.Role, standard structure.Role) error {
	if d.roleMap == nil {
		d.roleMap = make(map[structure.Role]structure.Role)
	}
	if _, ok := d.roleMap[custom]; ok {
		return pdf.Err(pdf.ErrRoleAlreadyDefined)
	}
	d.roleMap[custom] = standard
	return nil
}

// AddStructItem adds one node to the structure tree under parent (use
// RootStructID for a top-level item) and returns its identity for use
// with DrawingContext.BeginStructureMarkedContent.
func (d *Document) AddStructItem(role structure.Role, parent StructID) StructID {
	d.structItems = append(d.structItems, &structItemEntry{
		role:   role,
		parent: parent,
	})
	return StructID(len(d.structItems) - 1)
}

// recordStructureUsage notes that the structure item sid was tagged onto
// the page currently being drawn, at the given MCID. Called from
// DrawingContext.beginStructureMC once per structure item (enforced by
// usedStruct, since a structure item may be tagged onto at most one page).
func (d *Document) recordStructureUsage(sid StructID, mcid int) {
	if int(sid) < 0 || int(sid) >= len(d.structItems) {
		return
	}
	d.structItems[sid].pageMCID = append(d.structItems[sid].pageMCID, mcidRef{
		page: len(d.pages),
		mcid: mcid,
	})
}

// recordPageStructParent records that a page whose /StructParents entry
// is structParent tagged the given structure items, for building that
// page's parent-tree array (an array indexed by /StructParents mapping
// each page's MCIDs, in emission order, back to their owning structure
// item's indirect reference).
func (d *Document) recordPageStructParent(structParent int, structureIndices []int) {
	if d.pageStructParents == nil {
		d.pageStructParents = make(map[int][]int)
	}
	d.pageStructParents[structParent] = structureIndices
}

// structTreeRef allocates the structure tree's objects once, on first
// use by the catalog resolver: each item becomes its own indirect
// dictionary object (so /K entries and the parent tree can both point
// at it), plus a single StructTreeRoot.
func (d *Document) structTreeRef() pdf.Reference {
	if len(d.structItems) == 0 {
		return pdf.Reference{}
	}
	if d.structTreeRootRef != (pdf.Reference{}) {
		return d.structTreeRootRef
	}

	refs := make([]pdf.Reference, len(d.structItems))
	entries := make([]*objectEntry, len(d.structItems))
	for i := range d.structItems {
		refs[i], entries[i] = d.objects.alloc()
	}

	children := make([][]int, len(d.structItems))
	var roots []int
	for i, e := range d.structItems {
		if int(e.parent) < 0 || int(e.parent) >= len(d.structItems) {
			roots = append(roots, i)
			continue
		}
		children[e.parent] = append(children[e.parent], i)
	}

	for i, e := range d.structItems {
		kids := make(pdf.Array, 0, len(children[i])+len(e.pageMCID))
		for _, c := range children[i] {
			kids = append(kids, refs[c])
		}
		for _, m := range e.pageMCID {
			if m.page >= 0 && m.page < len(d.pages) {
				kids = append(kids, pdf.Dict{
					"Type": pdf.Name("MCR"),
					"Pg":   d.pages[m.page].ref,
					"MCID": pdf.Integer(m.mcid),
				})
			}
		}
		entries[i].resolved = true
		entries[i].dict = pdf.Dict{
			"Type": pdf.Name("StructElem"),
			"S":    pdf.Name(e.role),
			"K":    kids,
		}
	}

	rootKids := make(pdf.Array, len(roots))
	for i, r := range roots {
		rootKids[i] = refs[r]
	}

	parentTree := pdf.Dict{}
	parents := make([]int, 0, len(d.pageStructParents))
	for parent := range d.pageStructParents {
		parents = append(parents, parent)
	}
	sort.Ints(parents)
	var nums pdf.Array
	for _, parent := range parents {
		indices := d.pageStructParents[parent]
		arr := make(pdf.Array, len(indices))
		for i, idx := range indices {
			if idx >= 0 && idx < len(refs) {
				arr[i] = refs[idx]
			}
		}
		nums = append(nums, pdf.Integer(parent), arr)
	}
	parentTree["Nums"] = nums

	dict := pdf.Dict{
		"Type":       pdf.Name("StructTreeRoot"),
		"K":          rootKids,
		"ParentTree": parentTree,
	}
	if len(d.roleMap) > 0 {
		roleMap := pdf.Dict{}
		for custom, standard := range d.roleMap {
			roleMap[pdf.Name(custom)] = pdf.Name(standard)
		}
		dict["RoleMap"] = roleMap
	}

	d.structTreeRootRef = d.objects.addFull(dict, nil, false)
	return d.structTreeRootRef
}
