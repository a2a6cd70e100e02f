package discovery

import (
	"strings"

	"codeberg.org/path2prevention/server/path2prevention/programs"
)

// BuildSearchText composes the text a program is embedded under. The
// composition is deterministic per program, so rebuilding an unchanged
// data set produces identical input text for the embedding provider.
func BuildSearchText(rec programs.ProgramRecord) string {
	parts := make([]string, 0, 6)
	parts = append(parts, rec.OrganizationName)

	for _, field := range []*string{
		rec.Description,
		rec.DeliveryMode,
		rec.City,
		rec.State,
		rec.ZipCode,
	} {
		if field != nil && *field != "" {
			parts = append(parts, *field)
		}
	}

	return strings.Join(parts, "\n")
}
