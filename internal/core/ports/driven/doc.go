// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - CollectionReader: Parses the OParl JSON exports into typed records
//   - SnapshotStore: Persists parsed snapshots keyed by source fingerprint
//   - ConfigStore: Application configuration
//
// SnapshotStore is optional: without it the dataset service still memoizes
// in process, it just re-parses after a restart.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
