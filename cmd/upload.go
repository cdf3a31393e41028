// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// This file handles the put command, including concurrent multi-file
// uploads.
package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/timoha/aistore/pkg/cmn"
	"github.com/timoha/aistore/pkg/logger"
)

// progressEvery is how often the non-verbose upload path reports progress.
const progressEvery = 10 * time.Second

type fobj struct {
	path string // local path
	name string // object name
	size int64
}

var putCmd = &cobra.Command{
	Use:   "put SRC... BUCKET[/OBJECT]",
	Short: "Upload local files as objects",
	Long: `Upload one or more local files (or directories, recursively) to a bucket.
With a single source file the destination may name the object explicitly;
otherwise object names derive from file names, prefixed by the destination's
object part if given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPut,
}

func init() {
	putCmd.Flags().Int("workers", 10, "Concurrent uploads")
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	srcs, dst := args[:len(args)-1], args[len(args)-1]
	bck, prefix, err := cmn.ParseBckObjURI(dst)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	files, err := collectFiles(srcs, prefix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files to PUT (hint: check the source paths)")
	}

	var totalSize int64
	for _, f := range files {
		totalSize += f.size
	}
	fmt.Printf("PUT %d file(s), %s => %s\n", len(files), humanize.IBytes(uint64(totalSize)), bck)

	workers, _ := cmd.Flags().GetInt("workers")
	if workers < 1 {
		workers = 1
	}

	var (
		doneCnt  atomic.Int64
		doneSize atomic.Int64
		stop     = make(chan struct{})
	)
	go func() {
		t := time.NewTicker(progressEvery)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				pct := int64(100)
				if totalSize > 0 {
					pct = 100 * doneSize.Load() / totalSize
				}
				fmt.Printf("Uploaded %d/%d objects, %s (%d%%)\n",
					doneCnt.Load(), len(files),
					humanize.IBytes(uint64(doneSize.Load())), pct)
			}
		}
	}()
	defer close(stop)

	bucket := client.Bucket(bck)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			if _, err := bucket.Object(f.name).Put(ctx, f.path); err != nil {
				return fmt.Errorf("PUT %q => %s/%s: %w", f.path, bck, f.name, err)
			}
			doneCnt.Add(1)
			doneSize.Add(f.size)
			logger.Ctx(ctx).Debug().Str("src", f.path).Str("obj", f.name).Msg("uploaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("PUT %d object(s) to %s\n", len(files), bck)
	return nil
}

// collectFiles expands the source arguments into the objects to upload.
// Directories are walked recursively; object names are the file names
// relative to the walked root, under the destination prefix when given.
func collectFiles(srcs []string, prefix string) ([]fobj, error) {
	var files []fobj
	for _, src := range srcs {
		fi, err := os.Stat(src)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			name := objName(prefix, filepath.Base(src))
			// a non-directory destination names a single object directly
			if prefix != "" && !strings.HasSuffix(prefix, "/") && len(srcs) == 1 {
				name = prefix
			}
			files = append(files, fobj{path: src, name: name, size: fi.Size()})
			continue
		}
		root := src
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			files = append(files, fobj{
				path: p,
				name: objName(prefix, filepath.ToSlash(rel)),
				size: info.Size(),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func objName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
