// Package readmode turns arbitrary web pages into structured, reading-mode
// documents: a two-level sections view and a full heading outline, each
// carrying cleaned paragraphs, images and links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package readmode
