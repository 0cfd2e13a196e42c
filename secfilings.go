// Package secfilings extracts the "Item 1A: Risk Factors" section from
// SEC 10-K filings. Filings are large, machine-generated HTML documents
// with no reliable section markers, so boundaries are located
// heuristically over heading-bearing tags and the extracted text is
// cleaned of page-layout artifacts.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// trafilatura/, sqlite/).
package secfilings
