// Package dataview derives the visible slice of a tabular screen from a raw
// record list and the user's query.
//
// Compute runs three stages in a fixed order:
//
//  1. filter   – keep records accepted by the screen's Predicate;
//  2. sort     – stable sort by Query.SortField using the Comparator,
//     reversed for descending order;
//  3. paginate – slice [PageIndex*PageSize, PageIndex*PageSize+PageSize),
//     clamped; a page past the end is empty, never an error.
//
// Compute never mutates its inputs and keeps no state, so calling it on
// every keystroke or header click with the same inputs yields the same
// result. Every list screen of the console shares one Engine type and
// differs only in its Predicate and Comparator.
package dataview
