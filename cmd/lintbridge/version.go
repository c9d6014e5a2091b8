package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lintbridge/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show lintbridge build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := versionPayload{
			Tool:      "lintbridge",
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
		}
		switch strings.ToLower(versionFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "lintbridge %s\n", payload.Version)
			if payload.GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit %s\n", payload.GitCommit)
			}
			if payload.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built %s\n", payload.BuildDate)
			}
			return nil
		}
		return fmt.Errorf("unknown format %q", versionFormat)
	},
}
