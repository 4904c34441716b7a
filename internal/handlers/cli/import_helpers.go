package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
)

func displayComponentsForNumericSelection(out io.Writer, components []component.Component) {
	fmt.Fprintln(out, ui.PromptColor("Select components to import (e.g., 1,3-5, or 'all', 'none'):"))
	for i, c := range components {
		fmt.Fprintf(out, "%d. %s [%s] %s\n",
			i+1,
			ui.ComponentNameColor(c.Name),
			ui.AliasColor(strings.Join(c.Aliases, ", ")),
			ui.CodeColor(c.Command))
	}
}

// parseNumericSelectionInput turns "1,3-5", "all" or "none" into distinct
// zero-based indices, in the order they were given.
func parseNumericSelectionInput(input string, count int) ([]int, error) {
	switch trimmed := strings.ToLower(strings.TrimSpace(input)); trimmed {
	case "", "none":
		return []int{}, nil
	case "all":
		if count == 0 {
			return []int{}, nil
		}
		return parseNumericSelectionInput(fmt.Sprintf("1-%d", count), count)
	default:
		var indices []int
		for _, part := range strings.Split(trimmed, ",") {
			start, end, err := parseSelectionRange(strings.TrimSpace(part), count)
			if err != nil {
				return nil, err
			}
			for n := start; n <= end; n++ {
				if !slices.Contains(indices, n-1) {
					indices = append(indices, n-1)
				}
			}
		}
		return indices, nil
	}
}

// parseSelectionRange reads "n" or "a-b" as an inclusive one-based range
// within 1..count.
func parseSelectionRange(part string, count int) (int, int, error) {
	first, last, isRange := strings.Cut(part, "-")
	if !isRange {
		last = first
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(first))
	end, err2 := strconv.Atoi(strings.TrimSpace(last))
	if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
		return 0, 0, fmt.Errorf("invalid range or number (max %d): %s", count, part)
	}
	return start, end, nil
}
