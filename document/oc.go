package document

import (
	"github.com/tmr232/capypdf/oc"

	pdf "github.com/tmr232/capypdf"
)

// ocgEntry records one registered optional-content group's indirect
// object and default visibility.
type ocgEntry struct {
	ref       pdf.Reference
	defaultOn bool
}

// AddOCG registers a togglable optional-content layer, returning its
// handle for use with DrawingContext's Properties resource (BDC
// tagging) and BuildSubNavigation.
func (d *Document) AddOCG(g oc.Group, usage oc.Usage) OCGID {
	ref := d.objects.addFull(pdf.Dict{
		"Type": pdf.Name("OCG"),
		"Name": pdf.TextString(g.Name),
	}, nil, false)
	d.ocgs = append(d.ocgs, &ocgEntry{ref: ref, defaultOn: usage.DefaultOn})
	return OCGID(len(d.ocgs) - 1)
}

func (d *Document) ocgRefByIndex(i int) pdf.Reference {
	if i < 0 || i >= len(d.ocgs) {
		return pdf.Reference{}
	}
	return d.ocgs[i].ref
}

// buildOCProperties returns the catalog's /OCProperties dictionary, or
// nil if no OCGs were registered.
func (d *Document) buildOCProperties() pdf.Object {
	if len(d.ocgs) == 0 {
		return nil
	}
	all := make(pdf.Array, len(d.ocgs))
	var on, off pdf.Array
	for i, e := range d.ocgs {
		all[i] = e.ref
		if e.defaultOn {
			on = append(on, e.ref)
		} else {
			off = append(off, e.ref)
		}
	}
	return pdf.Dict{
		"OCGs": all,
		"D": pdf.Dict{
			"ON":        on,
			"OFF":       off,
			"BaseState": pdf.Name("ON"),
		},
	}
}

// BuildSubNavigation emits a slide-style sub-page-navigation chain: one
// root node that turns every registered OCG off, followed by one node
// per OCG that turns it on. It returns the root node's reference, for
// use as the /PresSteps entry of whichever page begins the navigation.
//
// All nodes are allocated consecutively in a single pass so that every
// node's /Prev and /Next can be filled in immediately rather than via a
// delayed resolve; this depends on the nodes being appended in exactly
// this order, since node i's /Next is the object numbered
// root_obj + 1 + i. The last node has no /Next.
func (d *Document) BuildSubNavigation() pdf.Reference {
	n := len(d.ocgs)
	if n == 0 {
		return pdf.Reference{}
	}

	refs := make([]pdf.Reference, n+1)
	entries := make([]*objectEntry, n+1)
	for i := range refs {
		refs[i], entries[i] = d.objects.alloc()
	}

	allOff := make([]int, n)
	for i := range allOff {
		allOff[i] = i
	}

	for i := 0; i <= n; i++ {
		dict := pdf.Dict{"Type": pdf.Name("NavNode")}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < n {
			dict["Next"] = refs[i+1]
		}

		var action oc.NavAction
		if i == 0 {
			action = oc.NavAction{TurnOff: allOff}
		} else {
			action = oc.NavAction{TurnOn: []int{i - 1}}
		}
		dict["NA"] = action.Dict(d.ocgRefByIndex)

		entries[i].resolved = true
		entries[i].dict = dict
	}

	d.navNodes = refs
	return refs[0]
}
