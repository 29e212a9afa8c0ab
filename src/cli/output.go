// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/render"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

func writeJSON(w io.Writer, v any) error {
	out, err := render.JSON(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

func writeHost(w io.Writer, host *ssllabs.Host, output outputFlags) error {
	switch {
	case output.json:
		return writeJSON(w, render.HostDocument(host))
	case output.table:
		_, err := io.WriteString(w, render.HostTable(host))
		return err
	default:
		_, err := io.WriteString(w, render.HostTree(host))
		return err
	}
}

// scanReport is the JSON shape of one scan outcome.
type scanReport struct {
	Host   string `json:"host"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func writeOutcomes(w io.Writer, outcomes []ssllabs.ScanOutcome, output outputFlags) error {
	switch {
	case output.json:
		reports := make([]scanReport, len(outcomes))
		for i, o := range outcomes {
			reports[i] = scanReport{Host: o.Host}
			if o.Err != nil {
				reports[i].Error = o.Err.Error()
			} else {
				reports[i].Result = render.HostDocument(o.Result)
			}
		}
		return writeJSON(w, reports)
	case output.table:
		_, err := io.WriteString(w, render.OutcomesTable(outcomes))
		return err
	default:
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			if _, err := io.WriteString(w, render.HostTree(o.Result)); err != nil {
				return err
			}
		}
		return nil
	}
}
