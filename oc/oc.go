// Package oc defines the value types for optional-content groups (PDF
// 1.7 §8.11) and the sub-page navigation (slide-style transitions) built
// on top of them. The document package owns OCG object numbering and
// the /OCProperties dictionary assembly.
package oc

import pdf "github.com/tmr232/capypdf"

// Group is one optional-content group: a togglable layer, identified by
// name.
type Group struct {
	Name string
}

// Usage describes the default visibility state an OCG should have in
// the document's default configuration.
type Usage struct {
	DefaultOn bool
}

// NavAction is the action a sub-page navigation node performs on
// entering (/NA) or leaving (/PA) — turning a set of OCGs on or off.
type NavAction struct {
	TurnOn  []int // OCG indices to switch on
	TurnOff []int // OCG indices to switch off
}

// Dict builds the action dictionary for one NavAction.
func (a NavAction) Dict(ocgRef func(int) pdf.Reference) pdf.Dict {
	var on, off pdf.Array
	for _, id := range a.TurnOn {
		on = append(on, ocgRef(id))
	}
	for _, id := range a.TurnOff {
		off = append(off, ocgRef(id))
	}
	d := pdf.Dict{"Type": pdf.Name("Action"), "S": pdf.Name("SetOCGState")}
	var state pdf.Array
	if len(on) > 0 {
		state = append(state, pdf.Name("ON"))
		state = append(state, on...)
	}
	if len(off) > 0 {
		state = append(state, pdf.Name("OFF"))
		state = append(state, off...)
	}
	d["State"] = state
	return d
}
