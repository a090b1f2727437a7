// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// stage extracts the single top-level operator of a pipeline stage
func stage(t *testing.T, s bson.D) (string, interface{}) {
	t.Helper()
	if len(s) != 1 {
		t.Fatalf("pipeline stage has %d operators, want 1: %v", len(s), s)
	}
	return s[0].Key, s[0].Value
}

func TestStatsPipelineShape(t *testing.T) {
	t.Parallel()

	p := statsPipeline()
	if len(p) != 3 {
		t.Fatalf("statsPipeline() has %d stages, want 3", len(p))
	}

	// Stage 1: $group by type
	op, val := stage(t, p[0])
	if op != "$group" {
		t.Fatalf("stage 0 = %s, want $group", op)
	}
	group := val.(bson.D)
	if group[0].Key != "_id" || group[0].Value != "$type" {
		t.Errorf("group _id = %v, want $type", group[0])
	}

	// Stage 2: $project drops _id and exposes it as type
	op, val = stage(t, p[1])
	if op != "$project" {
		t.Fatalf("stage 1 = %s, want $project", op)
	}
	project := val.(bson.D)
	if project[0].Key != "_id" || project[0].Value != 0 {
		t.Errorf("project must exclude _id, got %v", project[0])
	}
	if project[1].Key != "type" || project[1].Value != "$_id" {
		t.Errorf("project must rename _id to type, got %v", project[1])
	}

	// Stage 3: $sort by count desc, then type asc for a deterministic tie-break.
	// Element order inside the sort document is significant.
	op, val = stage(t, p[2])
	if op != "$sort" {
		t.Fatalf("stage 2 = %s, want $sort", op)
	}
	sort := val.(bson.D)
	if len(sort) != 2 {
		t.Fatalf("sort has %d keys, want 2", len(sort))
	}
	if sort[0].Key != "count" || sort[0].Value != -1 {
		t.Errorf("primary sort = %v, want count descending", sort[0])
	}
	if sort[1].Key != "type" || sort[1].Value != 1 {
		t.Errorf("tie-break sort = %v, want type ascending", sort[1])
	}
}

func TestListPipelineShape(t *testing.T) {
	t.Parallel()

	p := listPipeline(1, 20)
	if len(p) != 6 {
		t.Fatalf("listPipeline() has %d stages, want 6", len(p))
	}

	// Stage 1: sort newest-first within each aircraft so $first picks the
	// latest record. Key order matters: icao must come before timestamp.
	op, val := stage(t, p[0])
	if op != "$sort" {
		t.Fatalf("stage 0 = %s, want $sort", op)
	}
	sort := val.(bson.D)
	if sort[0].Key != "icao" || sort[0].Value != 1 {
		t.Errorf("sort key 0 = %v, want icao ascending", sort[0])
	}
	if sort[1].Key != "timestamp" || sort[1].Value != -1 {
		t.Errorf("sort key 1 = %v, want timestamp descending", sort[1])
	}

	// Stage 2: group per aircraft with $first accumulators
	op, val = stage(t, p[1])
	if op != "$group" {
		t.Fatalf("stage 1 = %s, want $group", op)
	}
	group := val.(bson.D)
	if group[0].Key != "_id" || group[0].Value != "$icao" {
		t.Errorf("group _id = %v, want $icao", group[0])
	}
	for _, field := range []string{"registration", "type"} {
		found := false
		for _, elem := range group[1:] {
			if elem.Key != field {
				continue
			}
			found = true
			first := elem.Value.(bson.D)
			if first[0].Key != "$first" || first[0].Value != "$"+field {
				t.Errorf("group %s accumulator = %v, want {$first: $%s}", field, first, field)
			}
		}
		if !found {
			t.Errorf("group stage missing %s accumulator", field)
		}
	}

	// Stage 4: re-sort by icao after grouping
	op, val = stage(t, p[3])
	if op != "$sort" {
		t.Fatalf("stage 3 = %s, want $sort", op)
	}
	resort := val.(bson.D)
	if len(resort) != 1 || resort[0].Key != "icao" || resort[0].Value != 1 {
		t.Errorf("post-group sort = %v, want icao ascending only", resort)
	}

	// Stages 5-6: pagination
	op, val = stage(t, p[4])
	if op != "$skip" || val != int64(0) {
		t.Errorf("stage 4 = %s %v, want $skip 0 for page 1", op, val)
	}
	op, val = stage(t, p[5])
	if op != "$limit" || val != int64(20) {
		t.Errorf("stage 5 = %s %v, want $limit 20", op, val)
	}
}

func TestListPipelinePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page     int
		pageSize int
		wantSkip int64
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 50, 100},
		{10, 1, 9},
		{1, 100, 0},
	}

	for _, tt := range tests {
		p := listPipeline(tt.page, tt.pageSize)

		_, skip := stage(t, p[4])
		if skip != tt.wantSkip {
			t.Errorf("listPipeline(%d, %d) skip = %v, want %d", tt.page, tt.pageSize, skip, tt.wantSkip)
		}
		_, limit := stage(t, p[5])
		if limit != int64(tt.pageSize) {
			t.Errorf("listPipeline(%d, %d) limit = %v, want %d", tt.page, tt.pageSize, limit, tt.pageSize)
		}
	}
}
