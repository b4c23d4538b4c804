package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

func TestFontExtensions_Match(t *testing.T) {
	exts := model.DefaultFontExtensions()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "ttf", file: "Arial.ttf", want: true},
		{name: "otf", file: "Inter.otf", want: true},
		{name: "fon", file: "System.fon", want: true},
		{name: "fnt", file: "Bitmap.fnt", want: true},
		{name: "upper case", file: "ARIAL.TTF", want: true},
		{name: "mixed case", file: "Inter.OtF", want: true},
		{name: "text file", file: "readme.txt", want: false},
		{name: "no extension", file: "ttf", want: false},
		{name: "suffix only", file: "font.ttf.zip", want: false},
		{name: "woff is not default", file: "Web.woff2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, exts.Match(tt.file)).Equal(tt.want)
		})
	}
}

func TestNewFontExtensions(t *testing.T) {
	got := model.NewFontExtensions([]string{"TTF", ".otf", " fon ", "", ".", ".ttf", "woff2"})
	want := model.FontExtensions{".ttf", ".otf", ".fon", ".woff2"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewFontExtensions() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsArchive(t *testing.T) {
	gt.True(t, model.IsArchive("fonts.zip"))
	gt.True(t, model.IsArchive("FONTS.ZIP"))
	gt.True(t, !model.IsArchive("fonts.tar.gz"))
	gt.True(t, !model.IsArchive("zip"))
}

func TestNewLayout(t *testing.T) {
	layout := model.NewLayout("/opt/fonts")

	gt.Value(t, layout.SearchRoot).Equal("/opt/fonts")
	gt.Value(t, layout.DestDir).Equal("/opt/fonts/font_files")
	gt.Value(t, layout.TempDir).Equal("/opt/fonts/temp_fonts")
	gt.Number(t, len(layout.Extensions)).Equal(4)
}
