// Package dispersal is the in-process reference implementation of the
// veri-store client/server protocol: it encodes and disperses an object's
// fragments across a simulated cluster of stores, and reassembles an
// object from verified fragments on retrieval. Real network transport and
// wire format are left to an actual deployment; this package exercises the
// core's external interface (field, erasure, crosschecksum, verifier)
// end-to-end without either of those concerns.
package dispersal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/rizkytaufiq/go-veristore/crosschecksum"
	"github.com/rizkytaufiq/go-veristore/erasure"
	"github.com/rizkytaufiq/go-veristore/internal/clusterconfig"
	"github.com/rizkytaufiq/go-veristore/internal/store"
	"github.com/rizkytaufiq/go-veristore/verifier"
)

// ErrDispersalFailed indicates fewer than m servers accepted a fragment on
// PUT.
var ErrDispersalFailed = errors.New("dispersal: fewer than m servers accepted the object")

// ErrRetrievalFailed indicates fewer than m verified fragments could be
// assembled on GET.
var ErrRetrievalFailed = errors.New("dispersal: fewer than m verified fragments available")

// Cluster holds one in-process Store per simulated server, indexed
// 0..n-1 to match fragment index.
type Cluster struct {
	Servers []*store.Store
}

// NewCluster creates a cluster of n empty, independent stores.
func NewCluster(n int) *Cluster {
	servers := make([]*store.Store, n)
	for i := range servers {
		servers[i] = store.New()
	}
	return &Cluster{Servers: servers}
}

// Client drives PUT/GET/DELETE/HealthCheck against a Cluster using the
// coding parameters n (len(cluster.Servers)) and m. PutTimeout/GetTimeout,
// when non-zero, bound the context passed to the corresponding server
// fan-out so a stalled server can't hold a caller open indefinitely.
type Client struct {
	Cluster    *Cluster
	M          int
	Logger     *log.Logger
	PutTimeout time.Duration
	GetTimeout time.Duration
}

// NewClient returns a Client with a default logger writing to stderr at
// info level, matching the rest of the corpus's charmbracelet/log usage,
// and no timeout bound (the caller's context governs directly).
func NewClient(cluster *Cluster, m int) *Client {
	return &Client{Cluster: cluster, M: m, Logger: log.Default()}
}

// NewClientFromConfig builds a Cluster and Client sized from cfg, carrying
// cfg's PutTimeout/GetTimeout so Put/Get bound their fan-out context.
func NewClientFromConfig(cfg clusterconfig.Config) *Client {
	client := NewClient(NewCluster(cfg.N), cfg.M)
	client.PutTimeout = cfg.PutTimeout
	client.GetTimeout = cfg.GetTimeout
	return client
}

// Put erasure-encodes data, generates its FPCC, and disperses each fragment
// to its designated server concurrently. It succeeds once at least m
// servers have accepted their fragment.
func (c *Client) Put(ctx context.Context, blockID string, data []byte) error {
	if c.PutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PutTimeout)
		defer cancel()
	}
	n := len(c.Cluster.Servers)
	fragments, err := erasure.Encode(data, n, c.M, blockID)
	if err != nil {
		return fmt.Errorf("dispersal: encode: %w", err)
	}
	fpcc, err := crosschecksum.Generate(fragments)
	if err != nil {
		return fmt.Errorf("dispersal: generate fpcc: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	accepted := make([]bool, n)
	for i, server := range c.Cluster.Servers {
		i, server, fragment := i, server, fragments[i]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			status := server.Put(fragment, fpcc)
			accepted[i] = status == store.Valid
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.Logger.Error("put fan-out interrupted", "block_id", blockID, "err", err)
	}

	count := 0
	for _, ok := range accepted {
		if ok {
			count++
		}
	}
	if count < c.M {
		c.Logger.Warn("dispersal quorum not reached", "block_id", blockID, "accepted", count, "need", c.M)
		return fmt.Errorf("%w: accepted %d, need %d", ErrDispersalFailed, count, c.M)
	}
	return nil
}

// Get fetches fragments from every server in parallel, re-verifies each one
// against the FPCC it was returned with, and decodes once at least m
// fragments pass verification.
func (c *Client) Get(ctx context.Context, blockID string) ([]byte, error) {
	if c.GetTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.GetTimeout)
		defer cancel()
	}
	n := len(c.Cluster.Servers)
	records := make([]*store.Record, n)

	g, ctx := errgroup.WithContext(ctx)
	for i, server := range c.Cluster.Servers {
		i, server := i, server
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			rec, err := server.Get(blockID, i)
			if err == nil {
				records[i] = &rec
			}
			return nil
		})
	}
	_ = g.Wait()

	var verified []erasure.Fragment
	for _, rec := range records {
		if rec == nil {
			continue
		}
		report := verifier.Check(rec.Fragment.Index, rec.Fragment.Data, rec.FPCC)
		if report.Result != verifier.Consistent {
			c.Logger.Warn("rejected inconsistent fragment", "block_id", blockID, "index", rec.Fragment.Index, "result", report.Result.String())
			continue
		}
		verified = append(verified, rec.Fragment)
	}

	if len(verified) < c.M {
		return nil, fmt.Errorf("%w: verified %d, need %d", ErrRetrievalFailed, len(verified), c.M)
	}

	data, err := erasure.Decode(verified)
	if err != nil {
		return nil, fmt.Errorf("dispersal: decode: %w", err)
	}
	return data, nil
}

// Delete requests deletion of a block from every server, best-effort.
// Absent fragments are not treated as errors, matching the original
// client's delete semantics.
func (c *Client) Delete(ctx context.Context, blockID string) error {
	g, _ := errgroup.WithContext(ctx)
	for i, server := range c.Cluster.Servers {
		server := server
		i := i
		g.Go(func() error {
			server.Delete(blockID, i)
			return nil
		})
	}
	return g.Wait()
}

// HealthCheck reports which servers are reachable. Every in-process store
// is always reachable; this method exists for interface parity with a real
// transport's health check.
func (c *Client) HealthCheck(ctx context.Context) map[int]bool {
	out := make(map[int]bool, len(c.Cluster.Servers))
	for i := range c.Cluster.Servers {
		out[i] = true
	}
	return out
}
