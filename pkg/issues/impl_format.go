/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Report struct {
	RunID   string  `json:"runId,omitempty"`
	Module  string  `json:"module,omitempty"`
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

func WriteReport(w io.Writer, format string, reports ...Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, reports...)
	case FormatJSON:
		return WriteJSON(w, reports...)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func WriteText(w io.Writer, reports ...Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, r := range reports {
		if r.Module != "" {
			fmt.Fprintf(buf, "== %s\n", r.Module)
		}
		for _, i := range r.Issues {
			buf.WriteString(i.String())
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "%d error(s), %d warning(s), %d info\n",
			r.Summary.BySeverity[SeverityError], r.Summary.BySeverity[SeverityWarning], r.Summary.BySeverity[SeverityInfo])
		categories := maps.Keys(r.Summary.ByCategory)
		slices.Sort(categories)
		for _, c := range categories {
			fmt.Fprintf(buf, "  %-36s %d\n", c, r.Summary.ByCategory[c])
		}
	}
	_, err := w.Write(buf.B)
	return err
}

func WriteJSON(w io.Writer, reports ...Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return err
	}
	_, err := w.Write(buf.B)
	return err
}
