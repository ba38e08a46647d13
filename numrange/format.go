package numrange

import (
	"strconv"
	"strings"
)

// Format writes values back as an expression, folding ascending runs like 4,5,6 into 4-6.
// Parsing the output with the same config gives back the same values as long as they
// are distinct and can be written with the range sign (negatives can't be written with '-').
func (this Config) Format(values []int) string {

	cfg := this.normalized()

	var builder strings.Builder

	for idx := 0; idx < len(values); {

		begin := values[idx]
		end := begin

		for idx+1 < len(values) && end < values[idx+1] && values[idx+1]-end == 1 {
			idx++
			end = values[idx]
		}

		idx++

		if builder.Len() > 0 {
			builder.WriteRune(cfg.separator)
		}

		builder.WriteString(strconv.Itoa(begin))

		if end != begin {
			builder.WriteRune(cfg.rangeSign)
			builder.WriteString(strconv.Itoa(end))
		}
	}

	return builder.String()
}
