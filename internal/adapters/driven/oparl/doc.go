// Package oparl reads the OParl JSON exports produced by the city's
// council information system. Each export is a single document shaped as
// {"data": [ {...record...}, ... ]}; fields beyond the required ones are
// ignored.
//
// Implements the driven.CollectionReader port. Failures carry the source
// file identity (and the record index where applicable) as a
// *domain.LoadError so the presentation layer can degrade one category
// without losing the others.
package oparl
