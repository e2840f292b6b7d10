// Package opt implements two-scope option parsing with pass-through
// semantics.
//
// Ownership boundary:
//   - option spec declarations (struct form and the "name|alias=s@" string
//     form)
//   - the tagged option value variant (bool | string | string list)
//   - the fixed parse policy: short-option bundling, case-insensitive name
//     matching, unmatched tokens left in the stream in their original order
//   - option set merging for the execution context
//
// The same stream is parsed twice per dispatch (global scope, then the
// resolved command's scope); pass-through is what makes the second pass
// possible.
package opt
