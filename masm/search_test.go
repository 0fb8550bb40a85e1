package masm

import (
	"sync"
	"testing"
)

func TestSearchRanksClosestFirst(t *testing.T) {
	res := Search("mov", 0)
	if len(res) < 3 {
		t.Fatalf("Expected several MOV variants, got %d", len(res))
	}
	if res[0].Name != "MOV" {
		t.Errorf("Expected MOV first, got %s", res[0].Name)
	}
	for _, e := range res {
		if e.Kind != KindInstruction {
			t.Errorf("Unexpected non-instruction match %s", e.Name)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	if res := Search("e", 2); len(res) != 2 {
		t.Errorf("Expected 2 results, got %d", len(res))
	}
	if res := Search("zzzz", 0); len(res) != 0 {
		t.Errorf("Expected no results, got %v", res)
	}
}

func TestSearchConcurrent(t *testing.T) {
	if len(names) != len(all) {
		t.Fatalf("Expected %d names, got %d", len(all), len(names))
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res := Search("mov", 1); len(res) != 1 || res[0].Name != "MOV" {
				t.Errorf("Expected MOV, got %v", res)
			}
		}()
	}
	wg.Wait()
}
