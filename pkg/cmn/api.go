// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmn holds the REST constants and wire types shared by the
// client SDK and the ais CLI.
package cmn

// API version prefix. Every request path is rooted here.
const APIVersion = "v1"

// Top-level REST resources.
const (
	PathObjects  = "objects"
	PathBuckets  = "buckets"
	PathDownload = "download"
	PathDaemon   = "daemon"
)

// Query parameter names.
const (
	QparamProvider = "provider"
	QparamArchpath = "archpath"
	QparamWhat     = "what"
)

// Values for QparamWhat.
const (
	WhatSmap = "smap"
)

// Response headers set by the cluster on object GET/HEAD.
const (
	HeaderChecksumValue = "ais-checksum-value"
	HeaderChecksumType  = "ais-checksum-type"
)

// Cloud providers a bucket can be backed by. Empty means the native provider.
const (
	ProviderAIS    = "ais"
	ProviderAmazon = "aws"
	ProviderGoogle = "gcp"
	ProviderAzure  = "az"
	ProviderHDFS   = "hdfs"
	ProviderHTTP   = "ht"
)

// Providers lists every provider the cluster understands.
var Providers = []string{ProviderAIS, ProviderAmazon, ProviderGoogle, ProviderAzure, ProviderHDFS, ProviderHTTP}

// Actions carried by ActMsg.
const (
	ActCreateBck      = "create-bck"
	ActDestroyBck     = "destroy-bck"
	ActEvictRemoteBck = "evict-remote-bck"
	ActList           = "list"
)

// ActMsg is the control message attached to bucket-level requests.
type ActMsg struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// ListMsg selects a single page of an object listing.
type ListMsg struct {
	Prefix            string `json:"prefix,omitempty"`
	PageSize          int    `json:"page_size,omitempty"`
	ContinuationToken string `json:"continuation_token,omitempty"`
}

// ObjEntry is one object in a listing page.
type ObjEntry struct {
	Name     string `json:"name"`
	Size     int64  `json:"size,omitempty"`
	Checksum string `json:"checksum,omitempty"`
	Atime    string `json:"atime,omitempty"`
	Version  string `json:"version,omitempty"`
}

// BucketList is one page of an object listing.
type BucketList struct {
	Entries           []*ObjEntry `json:"entries"`
	ContinuationToken string      `json:"continuation_token"`
}

// DlBody describes a download job: fetch Link into Bucket/ObjName.
type DlBody struct {
	Bucket   string `json:"bucket"`
	Provider string `json:"provider,omitempty"`
	ObjName  string `json:"objname"`
	Link     string `json:"link"`
	Timeout  string `json:"timeout,omitempty"`
}

// DlAdminBody addresses an existing download job.
type DlAdminBody struct {
	ID string `json:"id"`
}

// DlStatus is the cluster's progress report for a download job.
type DlStatus struct {
	ID            string `json:"id"`
	Finished      int    `json:"finished"`
	Total         int    `json:"total"`
	Aborted       bool   `json:"aborted"`
	FinishedTime  string `json:"finished_time,omitempty"`
	DownloadedRaw int64  `json:"downloaded,omitempty"`
}

// Smap is the subset of the cluster map the client needs.
type Smap struct {
	Version int64             `json:"version,string"`
	Primary *Snode            `json:"proxy_si"`
	Proxies map[string]*Snode `json:"pmap"`
	Targets map[string]*Snode `json:"tmap"`
}

// Snode is a single cluster node (proxy or target).
type Snode struct {
	DaemonID  string  `json:"daemon_id"`
	PublicNet NetInfo `json:"public_net"`
}

// NetInfo is a node's address on one network.
type NetInfo struct {
	NodeHostname string `json:"node_ip_addr"`
	DaemonPort   string `json:"daemon_port"`
	DirectURL    string `json:"direct_url"`
}

// URL returns the node's public endpoint.
func (s *Snode) URL() string {
	return s.PublicNet.DirectURL
}
