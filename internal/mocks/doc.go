// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these standardized
// mock implementations can be reused across packages.
//
// Usage:
//
//	import "github.com/phrazzld/ideagen/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := mocks.NewMockGeneratorWithText("## Plan")
//	    // Use the mock in your test...
//	    assert.Equal(t, 1, gen.CallCount())
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls so tests can assert on them
package mocks
