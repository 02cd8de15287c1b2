package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	jsoniter "github.com/json-iterator/go"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode serializes a snapshot as brotli-compressed JSON.
func Encode(snap common.Snapshot) ([]byte, error) {
	if snap.Version == 0 {
		snap.Version = common.SnapshotVersion
	}

	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if err := json.NewEncoder(bw).Encode(snap); err != nil {
		_ = bw.Close()
		return nil, fmt.Errorf("failed to encode graph: %w", err)
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress graph: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses data produced by Encode. Any decoding problem, including an
// unknown layout version or a type outside the ontology, is reported as
// ErrCorruptGraph.
func Decode(data []byte) (common.Snapshot, error) {
	if len(data) == 0 {
		return common.Snapshot{}, fmt.Errorf("%w: empty payload", ErrCorruptGraph)
	}

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return common.Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptGraph, err)
	}

	var snap common.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return common.Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptGraph, err)
	}
	if err := validate(snap); err != nil {
		return common.Snapshot{}, err
	}
	return snap, nil
}

func validate(snap common.Snapshot) error {
	if snap.Version != common.SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptGraph, snap.Version)
	}
	for _, n := range snap.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node without id", ErrCorruptGraph)
		}
		if n.Type != "" && !n.Type.Valid() {
			return fmt.Errorf("%w: node %q has unknown type %q", ErrCorruptGraph, n.ID, n.Type)
		}
	}
	for _, e := range snap.Edges {
		if _, ok := ontology.ParseRelationType(string(e.Relation)); !ok {
			return fmt.Errorf("%w: edge %q -> %q has unknown relation %q", ErrCorruptGraph, e.From, e.To, e.Relation)
		}
	}
	return nil
}

// SaveSnapshot encodes snap and writes it to storage under key.
func SaveSnapshot(ctx context.Context, storage GraphStorage, key string, snap common.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := storage.SaveGraph(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save graph %q: %w", key, err)
	}
	return nil
}

// LoadSnapshot reads and decodes the graph stored under key.
func LoadSnapshot(ctx context.Context, storage GraphStorage, key string) (common.Snapshot, error) {
	data, err := storage.LoadGraph(ctx, key)
	if err != nil {
		return common.Snapshot{}, fmt.Errorf("failed to load graph %q: %w", key, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return common.Snapshot{}, fmt.Errorf("failed to load graph %q: %w", key, err)
	}
	return snap, nil
}
