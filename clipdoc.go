// Package clipdoc extracts structured bibliographic records from archived
// news-database HTML exports. Each export file is a malformed HTML document
// holding one or more article records; clipdoc repairs the markup, splits it
// into articles, classifies each article's content blocks into fields
// (publication, date, byline, length, section, heading, body) and emits
// well-typed records for downstream text analysis.
//
// This package contains domain types, pure domain logic and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, etree/).
package clipdoc
