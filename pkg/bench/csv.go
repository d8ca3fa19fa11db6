package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one row per result. The header is derived from the
// first result: Size, one column per strategy, then one trailing
// <Strategy>Collisions column per collision-counting strategy.
func WriteCSV(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)

	header := []string{"Size"}
	for _, m := range results[0].Measures {
		header = append(header, m.Strategy)
	}
	for _, m := range results[0].Measures {
		if m.Collisions >= 0 {
			header = append(header, m.Strategy+"Collisions")
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, res := range results {
		if len(res.Measures) != len(results[0].Measures) {
			return fmt.Errorf("bench: result for size %d has %d strategies, header has %d",
				res.Size, len(res.Measures), len(results[0].Measures))
		}
		row := []string{strconv.Itoa(res.Size)}
		for _, m := range res.Measures {
			row = append(row, strconv.FormatInt(m.AvgNs, 10))
		}
		for _, m := range res.Measures {
			if m.Collisions >= 0 {
				row = append(row, strconv.FormatInt(m.Collisions, 10))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
