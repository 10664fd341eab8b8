package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/kresge/ticketsrv/catalog"
)

const maxDescriptionLen = 80

// ParseSeedFile reads the event seed file at path: line 2k+1 is a
// description (1-80 bytes after the trailing newline is stripped), line
// 2k+2 is its decimal seat count. Event ids are assigned 0-based in file
// order. Parsing stops cleanly at end of file; a description with no
// matching count line is discarded rather than treated as a partial event.
func ParseSeedFile(path string) ([]catalog.SeedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, argErr(ReasonBadPath, "cannot open seed file %q: %v", path, err)
	}
	defer f.Close()

	var entries []catalog.SeedEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxDescriptionLen*4)

	for {
		if !scanner.Scan() {
			break
		}
		desc := append([]byte(nil), scanner.Bytes()...)

		if !scanner.Scan() {
			break // trailing description with no count line: stop cleanly
		}
		countLine := scanner.Text()

		if len(desc) < 1 || len(desc) > maxDescriptionLen {
			return nil, fmt.Errorf("seed file %q: event %d has invalid description length %d", path, len(entries), len(desc))
		}
		count, err := strconv.ParseUint(countLine, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("seed file %q: event %d has invalid seat count %q: %w", path, len(entries), countLine, err)
		}

		entries = append(entries, catalog.SeedEntry{
			Description:      desc,
			TicketsAvailable: uint16(count),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seed file %q: %w", path, err)
	}
	return entries, nil
}
