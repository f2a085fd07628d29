//go:build tools

package tools

// CLI tools used during development. Not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: pinned via the go.mod tool directive;
//   `go tool goose -dir internal/adapter/postgres/migrations create <name> sql`
// - github.com/matryer/moq: regenerates the *_mock_test.go files from the
//   //go:generate lines in each package's tests.
