// Package store provides lookupload.DocumentWriter implementations.
//
// Available implementations:
//   - FirestoreWriter: Cloud Firestore through cloud.google.com/go/firestore,
//     or the emulator when FIRESTORE_EMULATOR_HOST is set
//   - MemoryWriter: in-process documents for dry runs and tests
//
// Every write replaces the whole document. Nothing here retries.
package store
