// Package element defines chemical species symbols as they appear in site
// candidate lists: real elements keyed by atomic number, plus the vacancy
// pseudo-species X, which means "no atom" and has code 0.
//
// Symbols outside the periodic table are legal species (they may label
// dummy or coarse-grained sites) but carry no canonical code.
package element
