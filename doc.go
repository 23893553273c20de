// Package pdf implements the low-level object model and file writer for
// PDF 1.7 documents: the eight native object types (Bool, Integer, Real,
// Name, String, Array, Dict, Reference), an indirect-object
// numbering discipline, and the header/body/xref/trailer serialization.
//
// Higher-level assembly — pages, fonts, graphics, structure trees,
// optional content — lives in the sibling packages font, graphics,
// color, structure, outline, oc, image, and document.
package pdf
