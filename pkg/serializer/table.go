package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var headerCaser = cases.Upper(language.English)

// renderTable writes v as a two-column field/value table. Nested objects
// flatten into dotted keys and array elements into bracketed indexes, so any
// serializable value renders without per-type table code.
func renderTable(out io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	rows := map[string]string{}
	flattenValue("", generic, rows)

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", headerCaser.String("field"), headerCaser.String("value"))
	if len(keys) == 0 {
		fmt.Fprintf(tw, "%s\t\n", "<empty>")
	}
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, rows[k])
	}
	return tw.Flush()
}

func flattenValue(prefix string, v any, rows map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenValue(key, item, rows)
		}
	case []any:
		for i, item := range val {
			flattenValue(fmt.Sprintf("%s[%d]", prefix, i), item, rows)
		}
	case nil:
		if prefix != "" {
			rows[prefix] = ""
		}
	case float64:
		// JSON numbers arrive as float64; render integers without decimals.
		if val == float64(int64(val)) {
			rows[prefix] = fmt.Sprintf("%d", int64(val))
		} else {
			rows[prefix] = fmt.Sprintf("%v", val)
		}
	default:
		rows[prefix] = fmt.Sprintf("%v", val)
	}
}
