// Command monday analyzes Monday.com board exports and turns them into a
// PostgreSQL seed script.
//
// Usage:
//
//	monday analyze --export-dir ./monday-export
//	monday import --export-dir ./monday-export --output seed.sql
//	monday apply --file seed.sql --verify
//	monday verify
package main

func main() {
	Execute()
}
