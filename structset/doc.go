// Package structset collects decorated structures generated on one parent
// lattice.
//
// A Set is append-only and safe for concurrent use. It refuses structures
// built on a different parent lattice, so every member shares one set of
// sites and candidates. Duplicates are allowed; Duplicates reports them
// by fingerprint for diagnostics only.
//
// Export writes every member as a V_Sim file (vacancies removed) plus a
// manifest.yaml describing the set.
package structset
