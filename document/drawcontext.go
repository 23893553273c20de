package document

import (
	"bytes"
	"fmt"

	gcolor "github.com/tmr232/capypdf/color"
	"github.com/tmr232/capypdf/graphics"
	"github.com/tmr232/capypdf/oc"

	pdf "github.com/tmr232/capypdf"
)

// Kind distinguishes what a DrawingContext's finished content stream
// becomes: a page, a colored tiling pattern's cell, a form XObject, or a
// transparency-group XObject.
type Kind int

const (
	KindPage Kind = iota
	KindColorTilingPattern
	KindFormXObject
	KindTransparencyGroup
)

// dstateKind is one entry of the nesting-discipline stack: q/Q, BT/ET, and
// BMC-BDC/EMC blocks must balance and marked-content blocks may not nest
// within each other in the same context.
type dstateKind int

const (
	dstateSaveState dstateKind = iota
	dstateText
	dstateMarkedContent
)

// DrawingContext accumulates PDF content-stream operators plus the
// resource references they touch. It is handed to the caller to mutate
// and is serialized (and discarded) when its owning Page, Pattern, form
// XObject, or transparency group is closed.
type DrawingContext struct {
	doc   *Document
	kind  Kind
	buf   bytes.Buffer
	res   *graphics.Resources
	stack []dstateKind
	ind   string

	markedDepth  int
	nextMCID     int
	finalized    bool
	err          error

	transition       *graphics.Transition
	customProps      graphics.PageProperties
	trGroupProps     graphics.TransparencyGroupProperties
	subNav           []oc.NavAction
}

func newDrawingContext(doc *Document, kind Kind) *DrawingContext {
	return &DrawingContext{
		doc:         doc,
		kind:        kind,
		res:         graphics.NewResources(),
		customProps: graphics.PageProperties{},
	}
}

func (dc *DrawingContext) fail(err error) error {
	if dc.err == nil {
		dc.err = err
	}
	return err
}

func (dc *DrawingContext) writeOp(format string, args ...any) error {
	if dc.err != nil {
		return dc.err
	}
	dc.buf.WriteString(dc.ind)
	fmt.Fprintf(&dc.buf, format, args...)
	dc.buf.WriteByte('\n')
	return nil
}

func (dc *DrawingContext) indent(kind dstateKind) error {
	if kind == dstateMarkedContent {
		for _, s := range dc.stack {
			if s == dstateMarkedContent {
				return dc.fail(pdf.Err(pdf.ErrNestedBMC))
			}
		}
	}
	dc.stack = append(dc.stack, kind)
	dc.ind += "  "
	return nil
}

func (dc *DrawingContext) dedent(kind dstateKind) error {
	if len(dc.stack) == 0 || dc.stack[len(dc.stack)-1] != kind {
		return dc.fail(pdf.Err(pdf.ErrDrawStateEndMismatch))
	}
	dc.stack = dc.stack[:len(dc.stack)-1]
	dc.ind = dc.ind[:len(dc.ind)-2]
	return nil
}

// ---- Path construction ----

func (dc *DrawingContext) MoveTo(x, y float64) error { return dc.writeOp("%s %s m", num(x), num(y)) }
func (dc *DrawingContext) LineTo(x, y float64) error { return dc.writeOp("%s %s l", num(x), num(y)) }
func (dc *DrawingContext) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	return dc.writeOp("%s %s %s %s %s %s c", num(x1), num(y1), num(x2), num(y2), num(x3), num(y3))
}
func (dc *DrawingContext) CurveToV(x2, y2, x3, y3 float64) error {
	return dc.writeOp("%s %s %s %s v", num(x2), num(y2), num(x3), num(y3))
}
func (dc *DrawingContext) CurveToY(x1, y1, x3, y3 float64) error {
	return dc.writeOp("%s %s %s %s y", num(x1), num(y1), num(x3), num(y3))
}
func (dc *DrawingContext) Rect(x, y, w, h float64) error {
	return dc.writeOp("%s %s %s %s re", num(x), num(y), num(w), num(h))
}
func (dc *DrawingContext) ClosePath() error { return dc.writeOp("h") }

// ---- Painting ----

func (dc *DrawingContext) Stroke() error          { return dc.writeOp("S") }
func (dc *DrawingContext) CloseStroke() error     { return dc.writeOp("s") }
func (dc *DrawingContext) Fill() error             { return dc.writeOp("f") }
func (dc *DrawingContext) FillEvenOdd() error      { return dc.writeOp("f*") }
func (dc *DrawingContext) FillStroke() error       { return dc.writeOp("B") }
func (dc *DrawingContext) FillStrokeEvenOdd() error { return dc.writeOp("B*") }
func (dc *DrawingContext) CloseFillStroke() error  { return dc.writeOp("b") }
func (dc *DrawingContext) CloseFillStrokeEvenOdd() error { return dc.writeOp("b*") }
func (dc *DrawingContext) EndPath() error          { return dc.writeOp("n") }

// ---- Clipping ----

func (dc *DrawingContext) Clip() error        { return dc.writeOp("W") }
func (dc *DrawingContext) ClipEvenOdd() error { return dc.writeOp("W*") }

// ---- State ----

// SaveState emits "q", pushing a save-state marker onto the nesting stack.
func (dc *DrawingContext) SaveState() error {
	if err := dc.writeOp("q"); err != nil {
		return err
	}
	return dc.indent(dstateSaveState)
}

// RestoreState emits "Q", failing with DrawStateEndMismatch if the stack
// top is not a matching SaveState.
func (dc *DrawingContext) RestoreState() error {
	if err := dc.dedent(dstateSaveState); err != nil {
		return err
	}
	return dc.writeOp("Q")
}

// GStatePopper is returned by PushGState; calling Pop emits the matching
// "Q", modeling a scoped q/Q guard.
type GStatePopper struct{ dc *DrawingContext }

// Pop restores the graphics state saved by PushGState. Safe to call once;
// subsequent calls are no-ops.
func (p *GStatePopper) Pop() error {
	if p.dc == nil {
		return nil
	}
	dc := p.dc
	p.dc = nil
	return dc.RestoreState()
}

// PushGState emits "q" and returns a guard whose Pop emits the matching
// "Q", for defer-friendly scoped state changes.
func (dc *DrawingContext) PushGState() (*GStatePopper, error) {
	if err := dc.SaveState(); err != nil {
		return nil, err
	}
	return &GStatePopper{dc: dc}, nil
}

func (dc *DrawingContext) SetCTM(m graphics.Matrix) error {
	if dc.err != nil {
		return dc.err
	}
	if err := m.WriteCM(&dc.buf, dc.ind); err != nil {
		return dc.fail(err)
	}
	return nil
}

func (dc *DrawingContext) SetLineWidth(w float64) error  { return dc.writeOp("%s w", num(w)) }
func (dc *DrawingContext) SetLineCap(c graphics.LineCap) error {
	return dc.writeOp("%d J", int(c))
}
func (dc *DrawingContext) SetLineJoin(j graphics.LineJoin) error {
	return dc.writeOp("%d j", int(j))
}
func (dc *DrawingContext) SetMiterLimit(m float64) error { return dc.writeOp("%s M", num(m)) }

func (dc *DrawingContext) SetDash(array []float64, phase float64) error {
	parts := make([]string, len(array))
	for i, v := range array {
		parts[i] = num(v)
	}
	return dc.writeOp("[%s] %s d", join(parts), num(phase))
}

func (dc *DrawingContext) SetRenderingIntent(ri graphics.RenderingIntent) error {
	return dc.writeOp("/%s ri", string(ri))
}

func (dc *DrawingContext) SetFlatness(f float64) error { return dc.writeOp("%s i", num(f)) }

func (dc *DrawingContext) SetGState(id GStateID) error {
	if int(id) < 0 || int(id) >= len(dc.doc.gstates) {
		return dc.fail(pdf.Err(pdf.ErrIndexOutOfBounds))
	}
	dc.res.UseGState(int(id))
	return dc.writeOp("/GS%d gs", int(id))
}

// ---- Color ----

// SetColor dispatches to the PDF operator matching c's color-space kind,
// validates channel ranges, and registers any colorspace resource it
// needs.
func (dc *DrawingContext) SetColor(c gcolor.Color, stroke bool) error {
	if dc.err != nil {
		return dc.err
	}
	if err := gcolor.Validate(c); err != nil {
		return dc.fail(err)
	}
	switch c.Space() {
	case gcolor.SpaceLab, gcolor.SpaceICCBased, gcolor.SpaceSeparation:
		if name, ok := colorSpaceName(c); ok {
			dc.res.UseColorSpace(name)
			selectOp := pdf.Name("cs")
			if stroke {
				selectOp = "CS"
			}
			if err := dc.writeOp("%s %s", nameOperand(name), selectOp); err != nil {
				return err
			}
		}
	}
	op, args := gcolor.Operator(c, stroke)
	return dc.writeOperands(op, args)
}

func colorSpaceName(c gcolor.Color) (pdf.Name, bool) {
	switch c := c.(type) {
	case gcolor.Lab:
		return c.ColorSpaceName, true
	case gcolor.ICC:
		return c.ColorSpaceName, true
	case gcolor.Separation:
		return c.ColorSpaceName, true
	}
	return "", false
}

func (dc *DrawingContext) writeOperands(op pdf.Name, args []pdf.Object) error {
	buf := &bytes.Buffer{}
	for _, a := range args {
		if err := a.PDF(buf); err != nil {
			return dc.fail(err)
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(string(op))
	return dc.writeOp("%s", buf.String())
}

func (dc *DrawingContext) SetStrokeColor(c gcolor.Color) error   { return dc.SetColor(c, true) }
func (dc *DrawingContext) SetNonStrokeColor(c gcolor.Color) error { return dc.SetColor(c, false) }

// ---- XObjects & shadings ----

func (dc *DrawingContext) DrawImage(id ImageID) error {
	if _, err := dc.doc.image(id); err != nil {
		return dc.fail(err)
	}
	dc.res.UseImage(int(id))
	return dc.writeOp("/Im%d Do", int(id))
}

func (dc *DrawingContext) DrawFormXObject(id FormXObjectID) error {
	if int(id) < 0 || int(id) >= len(dc.doc.formXs) {
		return dc.fail(pdf.Err(pdf.ErrIndexOutOfBounds))
	}
	dc.res.UseFormXObject(int(id))
	return dc.writeOp("/Fx%d Do", int(id))
}

func (dc *DrawingContext) DrawTransparencyGroup(id TransparencyGroupID) error {
	if int(id) < 0 || int(id) >= len(dc.doc.trGroups) {
		return dc.fail(pdf.Err(pdf.ErrIndexOutOfBounds))
	}
	dc.res.UseTransparencyGroup(int(id))
	return dc.writeOp("/Tg%d Do", int(id))
}

func (dc *DrawingContext) Shade(id ShadingID) error {
	if int(id) < 0 || int(id) >= len(dc.doc.shadings) {
		return dc.fail(pdf.Err(pdf.ErrIndexOutOfBounds))
	}
	dc.res.UseShading(int(id))
	return dc.writeOp("/Sh%d sh", int(id))
}

// ---- Text ----

func (dc *DrawingContext) BeginText() error {
	if err := dc.writeOp("BT"); err != nil {
		return err
	}
	return dc.indent(dstateText)
}

func (dc *DrawingContext) EndText() error {
	if err := dc.dedent(dstateText); err != nil {
		return err
	}
	return dc.writeOp("ET")
}

func (dc *DrawingContext) SetTextRenderingMode(m graphics.TextMode) error {
	return dc.writeOp("%d Tr", int(m))
}

// ---- Marked content ----

// BeginMarkedContent emits BMC (no properties) or BDC (with an inline or
// referenced property dict). Nested marked-content blocks within the same
// context are rejected with NestedBMC.
func (dc *DrawingContext) BeginMarkedContent(mc graphics.MarkedContent) error {
	if dc.err != nil {
		return dc.err
	}
	if err := dc.indent(dstateMarkedContent); err != nil {
		return err
	}
	dc.markedDepth++

	if mc.HasStructureItem {
		return dc.beginStructureMC(mc)
	}
	if mc.HasOCG {
		dc.res.UseOCG(mc.OCGIndex)
		return dc.writeOp("/%s /OC%d BDC", string(mc.Tag), mc.OCGIndex)
	}
	if mc.Properties == nil {
		return dc.writeOp("/%s BMC", string(mc.Tag))
	}
	return dc.writeOp("/%s %s BDC", string(mc.Tag), dictOperand(mc.Properties))
}

func dictOperand(d pdf.Dict) string {
	buf := &bytes.Buffer{}
	_ = d.PDF(buf)
	return buf.String()
}

func (dc *DrawingContext) beginStructureMC(mc graphics.MarkedContent) error {
	sid := StructID(mc.StructureItem)
	if dc.doc.usedStruct[sid] {
		return dc.fail(pdf.Err(pdf.ErrStructureReuse))
	}
	dc.doc.usedStruct[sid] = true
	dc.res.UseStructure(int(sid))
	mcid := dc.nextMCID
	dc.nextMCID++
	dc.doc.recordStructureUsage(sid, mcid)
	return dc.writeOp("/%s << /MCID %d >> BDC", string(mc.Tag), mcid)
}

// BeginStructureMarkedContent is a convenience wrapper around
// BeginMarkedContent for the common case of tagging content to a
// structure-tree item.
func (dc *DrawingContext) BeginStructureMarkedContent(tag pdf.Name, sid StructID) error {
	return dc.BeginMarkedContent(graphics.MarkedContent{
		Tag: tag, HasStructureItem: true, StructureItem: int(sid),
	})
}

// BeginOCGMarkedContent is a convenience wrapper around
// BeginMarkedContent for tagging content as a member of an
// optional-content group.
func (dc *DrawingContext) BeginOCGMarkedContent(tag pdf.Name, id OCGID) error {
	return dc.BeginMarkedContent(graphics.MarkedContent{
		Tag: tag, HasOCG: true, OCGIndex: int(id),
	})
}

func (dc *DrawingContext) EndMarkedContent() error {
	if err := dc.dedent(dstateMarkedContent); err != nil {
		return err
	}
	dc.markedDepth--
	return dc.writeOp("EMC")
}

// ---- Geometric helpers ----

func (dc *DrawingContext) Scale(sx, sy float64) error {
	return dc.SetCTM(graphics.Scale(sx, sy))
}

func (dc *DrawingContext) Translate(tx, ty float64) error {
	return dc.SetCTM(graphics.Translate(tx, ty))
}

func (dc *DrawingContext) Rotate(angle float64) error {
	return dc.SetCTM(graphics.Rotate(angle))
}

func (dc *DrawingContext) DrawUnitBox() error {
	if err := dc.Rect(0, 0, 1, 1); err != nil {
		return err
	}
	return nil
}

// DrawUnitCircle approximates a unit circle with four cubic BĂ©zier arcs,
// the standard magic-constant (kappa) approximation.
func (dc *DrawingContext) DrawUnitCircle() error {
	const k = 0.5522847498307936
	if err := dc.MoveTo(1, 0); err != nil {
		return err
	}
	if err := dc.CurveTo(1, k, k, 1, 0, 1); err != nil {
		return err
	}
	if err := dc.CurveTo(-k, 1, -1, k, -1, 0); err != nil {
		return err
	}
	if err := dc.CurveTo(-1, -k, -k, -1, 0, -1); err != nil {
		return err
	}
	return dc.CurveTo(k, -1, 1, -k, 1, 0)
}

// ---- Sub-page navigation / transitions / custom properties ----

func (dc *DrawingContext) SetTransition(t graphics.Transition) { dc.transition = &t }

func (dc *DrawingContext) SetCustomPageProperty(key pdf.Name, val pdf.Object) {
	dc.customProps[key] = val
}

func (dc *DrawingContext) SetTransparencyGroupProperties(p graphics.TransparencyGroupProperties) error {
	if dc.kind != KindTransparencyGroup {
		return dc.fail(pdf.Err(pdf.ErrInvalidDrawContextType))
	}
	dc.trGroupProps = p
	return nil
}

// finalizeStream checks the nesting invariants and returns the finished content
// stream bytes. Called exactly once, by the owning Page/Pattern/XObject
// close path.
func (dc *DrawingContext) finalizeStream() ([]byte, error) {
	if dc.err != nil {
		return nil, dc.err
	}
	if dc.finalized {
		return nil, pdf.Err(pdf.ErrUnreachable)
	}
	if dc.markedDepth != 0 {
		return nil, pdf.Err(pdf.ErrUnclosedMarkedContent)
	}
	if len(dc.stack) != 0 {
		return nil, pdf.Err(pdf.ErrDrawStateEndMismatch)
	}
	dc.finalized = true
	return dc.buf.Bytes(), nil
}

func num(v float64) string { return graphics.FormatReal(v) }

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
