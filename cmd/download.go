// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timoha/aistore/pkg/cmn"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage cluster jobs",
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Manage download jobs (cluster-side fetches from external URLs)",
}

var downloadStartCmd = &cobra.Command{
	Use:   "start LINK BUCKET/OBJECT",
	Short: "Start a download job fetching LINK into BUCKET/OBJECT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		link := args[0]
		bck, objName, err := cmn.ParseBckObjURI(args[1])
		if err != nil {
			return err
		}
		if objName == "" {
			return fmt.Errorf("expecting BUCKET/OBJECT destination, got %q", args[1])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := client.StartDownload(cmd.Context(), cmn.DlBody{
			Bucket:   bck.Name,
			Provider: bck.Provider,
			ObjName:  objName,
			Link:     link,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Started download job %s\n", id)
		return nil
	},
}

var downloadStatusCmd = &cobra.Command{
	Use:   "status JOB_ID",
	Short: "Show a download job's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		status, err := client.DownloadStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		switch {
		case status.Aborted:
			fmt.Printf("Job %s: aborted (%d/%d done)\n", status.ID, status.Finished, status.Total)
		case status.Total > 0 && status.Finished >= status.Total:
			fmt.Printf("Job %s: finished (%d objects)\n", status.ID, status.Total)
		default:
			fmt.Printf("Job %s: %d/%d done\n", status.ID, status.Finished, status.Total)
		}
		return nil
	},
}

var downloadAbortCmd = &cobra.Command{
	Use:   "abort JOB_ID",
	Short: "Abort a running download job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.AbortDownload(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Aborted download job %s\n", args[0])
		return nil
	},
}

var downloadRemoveCmd = &cobra.Command{
	Use:   "rm JOB_ID",
	Short: "Remove a finished or aborted download job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.RemoveDownload(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed download job %s\n", args[0])
		return nil
	},
}

func init() {
	downloadCmd.AddCommand(downloadStartCmd, downloadStatusCmd, downloadAbortCmd, downloadRemoveCmd)
	jobCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(jobCmd)
}
