// Package domain defines the core business entities for ratsdata.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types and the pure transformations over them:
//
//   - AgendaItem: A council agenda item with its derived decision status
//   - Person, Organization, Membership: The OParl people model
//   - MemberRow: The denormalised membership join output
//   - Filter and aggregation primitives shared by every data category
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse. Every transformation here is a pure function
// over in-memory snapshots; no I/O happens in this package.
package domain
