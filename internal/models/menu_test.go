// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestBuildMenuTree(t *testing.T) {
	flat := []Menu{
		{ID: 1, Title: "Início"},
		{ID: 2, Title: "Guias"},
		{ID: 3, Title: "Iniciante", ParentID: ptr(int64(2))},
		{ID: 4, Title: "Avançado", ParentID: ptr(int64(2))},
		{ID: 5, Title: "Classes", ParentID: ptr(int64(3))},
		{ID: 6, Title: "Órfão", ParentID: ptr(int64(99))},
		{ID: 7, Title: "Self", ParentID: ptr(int64(7))},
	}

	tree := BuildMenuTree(flat)

	var rootIDs []int64
	for _, m := range tree {
		rootIDs = append(rootIDs, m.ID)
	}
	wantRoots := []int64{1, 2, 6, 7}
	if len(rootIDs) != len(wantRoots) {
		t.Fatalf("roots: got %v, want %v", rootIDs, wantRoots)
	}
	for i := range wantRoots {
		if rootIDs[i] != wantRoots[i] {
			t.Fatalf("roots: got %v, want %v", rootIDs, wantRoots)
		}
	}

	guias := tree[1]
	if len(guias.Children) != 2 {
		t.Fatalf("Guias children: got %d, want 2", len(guias.Children))
	}
	if guias.Children[0].ID != 3 || guias.Children[1].ID != 4 {
		t.Errorf("children order not preserved: %d, %d", guias.Children[0].ID, guias.Children[1].ID)
	}
	if len(guias.Children[0].Children) != 1 || guias.Children[0].Children[0].ID != 5 {
		t.Error("expected Classes nested under Iniciante")
	}
	if len(tree[3].Children) != 0 {
		t.Error("self-referencing entry must not contain itself")
	}
}

func TestBuildMenuTreeDropsCycles(t *testing.T) {
	flat := []Menu{
		{ID: 1, Title: "A", ParentID: ptr(int64(2))},
		{ID: 2, Title: "B", ParentID: ptr(int64(1))},
		{ID: 3, Title: "Root"},
	}

	tree := BuildMenuTree(flat)
	if len(tree) != 1 || tree[0].ID != 3 {
		t.Fatalf("expected only the acyclic root, got %+v", tree)
	}
}

func TestBuildMenuTreeEmpty(t *testing.T) {
	if tree := BuildMenuTree(nil); len(tree) != 0 {
		t.Errorf("expected empty tree, got %d entries", len(tree))
	}
}
