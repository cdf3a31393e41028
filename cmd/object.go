// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// This file implements the object-level CLI commands: ls, get, stat, rm.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/timoha/aistore/pkg/api"
	"github.com/timoha/aistore/pkg/cmn"
)

var lsCmd = &cobra.Command{
	Use:   "ls BUCKET",
	Short: "List objects in a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, bck, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		var (
			prefix, _   = cmd.Flags().GetString("prefix")
			pageSize, _ = cmd.Flags().GetInt("page-size")
			limit, _    = cmd.Flags().GetInt("limit")
		)
		entries, err := client.Bucket(bck).List(cmd.Context(), api.ListArgs{
			Prefix:   prefix,
			PageSize: pageSize,
			Limit:    limit,
		})
		if err != nil {
			return err
		}
		var total int64
		for _, e := range entries {
			fmt.Printf("%-12s %s\n", humanize.IBytes(uint64(e.Size)), e.Name)
			total += e.Size
		}
		fmt.Printf("Total: %d objects, %s\n", len(entries), humanize.IBytes(uint64(total)))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get BUCKET/OBJECT [DST]",
	Short: "Download an object to a local file (or - for stdout)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := objectFromArg(args[0])
		if err != nil {
			return err
		}
		archpath, _ := cmd.Flags().GetString("archpath")

		s, err := obj.Get(cmd.Context(), &api.GetArgs{Archpath: archpath})
		if err != nil {
			return err
		}
		defer s.Close()

		dst := "-"
		if len(args) == 2 {
			dst = args[1]
		}
		if dst == "-" {
			_, err := s.WriteTo(os.Stdout)
			return err
		}

		f, err := os.Create(dst)
		if err != nil {
			return err
		}
		n, err := s.WriteTo(f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}
		fmt.Printf("GET %s: %s => %q\n", obj.Name(), humanize.IBytes(uint64(n)), dst)
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat BUCKET/OBJECT",
	Short: "Show an object's properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := objectFromArg(args[0])
		if err != nil {
			return err
		}
		hdr, err := obj.Head(cmd.Context())
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(hdr))
		for k := range hdr {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, strings.Join(hdr.Values(k), ", "))
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm BUCKET/OBJECT",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := objectFromArg(args[0])
		if err != nil {
			return err
		}
		if err := obj.Delete(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Deleted %s/%s\n", obj.Bucket().Bck(), obj.Name())
		return nil
	},
}

func init() {
	lsCmd.Flags().String("prefix", "", "Only objects whose names start with this prefix")
	lsCmd.Flags().Int("page-size", 0, "Listing page size (0 = cluster default)")
	lsCmd.Flags().Int("limit", 0, "Stop after this many objects (0 = all)")
	getCmd.Flags().String("archpath", "", "Extract a single member from an archive object")

	rootCmd.AddCommand(lsCmd, getCmd, statCmd, rmCmd)
}

// objectFromArg parses "bucket/object" (with optional provider prefix) and
// returns a bound object handle.
func objectFromArg(arg string) (*api.Object, error) {
	bck, objName, err := cmn.ParseBckObjURI(arg)
	if err != nil {
		return nil, err
	}
	if objName == "" {
		return nil, fmt.Errorf("expecting BUCKET/OBJECT, got %q", arg)
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return client.Bucket(bck).Object(objName), nil
}
