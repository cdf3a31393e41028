// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timoha/aistore/pkg/api"
	"github.com/timoha/aistore/pkg/cmn"
)

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Create, destroy and list buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create BUCKET",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, bck, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		if err := client.Bucket(bck).Create(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Created bucket %s\n", bck)
		return nil
	},
}

var bucketDestroyCmd = &cobra.Command{
	Use:   "destroy BUCKET",
	Short: "Destroy a bucket and all of its objects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, bck, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		if err := client.Bucket(bck).Destroy(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Destroyed bucket %s\n", bck)
		return nil
	},
}

var bucketEvictCmd = &cobra.Command{
	Use:   "evict BUCKET",
	Short: "Evict the cluster's cached copies of a remote bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, bck, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		if !bck.IsRemote() {
			return fmt.Errorf("%s is not a remote bucket", bck)
		}
		if err := client.Bucket(bck).Evict(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Evicted bucket %s\n", bck)
		return nil
	},
}

var bucketListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		provider, _ := cmd.Flags().GetString("provider")
		bcks, err := client.ListBuckets(cmd.Context(), provider)
		if err != nil {
			return err
		}
		for _, bck := range bcks {
			fmt.Println(bck)
		}
		return nil
	},
}

func init() {
	bucketListCmd.Flags().String("provider", "", "Only list buckets of this provider")

	bucketCmd.AddCommand(bucketCreateCmd, bucketDestroyCmd, bucketEvictCmd, bucketListCmd)
	rootCmd.AddCommand(bucketCmd)
}

// bucketFromArg parses a bucket URI and builds the client in one go.
func bucketFromArg(arg string) (client *api.Client, bck cmn.Bck, err error) {
	bck, objName, err := cmn.ParseBckObjURI(arg)
	if err != nil {
		return nil, bck, err
	}
	if objName != "" {
		return nil, bck, fmt.Errorf("expecting a bucket, got object %q", arg)
	}
	c, err := newClient()
	if err != nil {
		return nil, bck, err
	}
	return c, bck, nil
}
