package value

import (
	"fmt"
	"strings"

	"github.com/arloliu/calvin/section"
)

// DescribeHeader renders a data header tree as indented text for debugging
// and inspection tools: one line per header with its identity fields, then
// one line per metadata triplet with its value in the uniform textual mode,
// then the parent headers indented one level deeper.
//
// Undecodable triplet values render as "<error>"; the dump never fails.
func DescribeHeader(h *section.DataHeader) string {
	var sb strings.Builder
	describeHeader(&sb, h, 0)

	return sb.String()
}

func describeHeader(sb *strings.Builder, h *section.DataHeader, depth int) {
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(sb, "%s%s (id %s, created %s, locale %s)\n",
		indent, h.DataTypeID.String(), h.UniqueFileID.String(),
		h.DateTime.String(), h.Locale.String())

	for i := range h.NVTs {
		text, err := DecodeToString(h.NVTs[i])
		if err != nil && text == "" {
			text = "<error>"
		}
		fmt.Fprintf(sb, "%s  %s = %s\n", indent, h.NVTs[i].Name.String(), text)
	}

	for _, parent := range h.Parents {
		describeHeader(sb, parent, depth+1)
	}
}
