// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jeremyhahn/go-shades/pkg/shareset"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// Reconstruction is the printable outcome of a successful recover
type Reconstruction struct {
	ShareSetID string `json:"share_set_id,omitempty"`
	SessionID  string `json:"session_id"`
	Threshold  int    `json:"threshold"`
	Shares     []int  `json:"shares"`
	F          []int  `json:"f"`
	G          []int  `json:"g"`
	Ratio      int    `json:"ratio"`
}

// PrintShareSet prints a share set and all of its shares
func (p *Printer) PrintShareSet(s *shareset.ShareSet) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(s)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Share set: %s\n", s.ID)
		fmt.Fprintf(p.writer, "Threshold: %d of %d\n", s.Threshold, s.Total)
		fmt.Fprintf(p.writer, "Created:   %s\n", s.CreatedAt.Format(time.RFC3339))
		tw := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "X\tF\tG")
		for _, share := range s.Shares {
			fmt.Fprintf(tw, "%d\t%d\t%d\n", share.X, share.F, share.G)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintShareSetList prints stored share set IDs
func (p *Printer) PrintShareSetList(ids []string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"share_sets": ids,
		})
	case OutputFormatText:
		if len(ids) == 0 {
			fmt.Fprintln(p.writer, "No share sets stored")
			return nil
		}
		fmt.Fprintln(p.writer, "Share sets:")
		for _, id := range ids {
			fmt.Fprintf(p.writer, "  - %s\n", id)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintReconstruction prints the recovered polynomials
func (p *Printer) PrintReconstruction(r *Reconstruction) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(r)
	case OutputFormatText:
		if r.ShareSetID != "" {
			fmt.Fprintf(p.writer, "Share set: %s\n", r.ShareSetID)
		}
		fmt.Fprintf(p.writer, "Threshold: %d (shares %s)\n", r.Threshold, joinInts(r.Shares))
		fmt.Fprintf(p.writer, "F: %s\n", joinInts(r.F))
		fmt.Fprintf(p.writer, "G: %s\n", joinInts(r.G))
		fmt.Fprintf(p.writer, "Ratio: %d\n", r.Ratio)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintVersion prints build information
func (p *Printer) PrintVersion(info VersionInfo) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(info)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "shades version %s\n", info.Version)
		fmt.Fprintf(p.writer, "Git commit: %s\n", info.Commit)
		fmt.Fprintf(p.writer, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(p.writer, "Go version: %s\n", info.GoVersion)
		fmt.Fprintf(p.writer, "OS/Arch: %s/%s\n", info.OS, info.Arch)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status":  "success",
			"message": message,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, message)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
