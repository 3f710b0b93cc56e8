// Package testutil provides utilities for testing LibEvents components.
//
// Key components:
//   - RecordingSource: scripted events.Source that records every
//     subscribe/unsubscribe call in order
//   - CallRecorder: collects callback invocations for assertions
//
// All test data should be defined inline and each test should be
// completely isolated with no shared state.
package testutil
