// Package imdbtop scrapes the IMDb Top 250 charts, stores the scraped titles
// in a local database and produces category reports from them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package imdbtop
