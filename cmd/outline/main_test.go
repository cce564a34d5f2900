package main

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/milk9111/bossforge/raster"
)

func TestOutlinePassesFlag(t *testing.T) {
	got, err := outlinePasses("black:2, #ff000080:1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []raster.OutlinePass{
		{Color: color.NRGBA{A: 255}, Thickness: 2},
		{Color: color.NRGBA{R: 255, A: 128}, Thickness: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected passes (-want +got):\n%s", diff)
	}
}

func TestOutlinePassesRejects(t *testing.T) {
	for _, v := range []string{"black", "black:x", "black:-1", "notacolour:1"} {
		t.Run(v, func(t *testing.T) {
			if _, err := outlinePasses(v); err == nil {
				t.Fatalf("expected %q to be rejected", v)
			}
		})
	}
}
