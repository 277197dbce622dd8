package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Faultbox/fireconv/internal/config"
	"github.com/Faultbox/fireconv/internal/scene"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.fire", "a.fire", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	got, err := expandInputs([]string{
		filepath.Join(dir, "*.fire"),
		filepath.Join(dir, "a.fire"),
		"literal.fire",
	})
	if err != nil {
		t.Fatalf("expandInputs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.fire"),
		filepath.Join(dir, "b.fire"),
		"literal.fire",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandInputs() = %v, want %v", got, want)
	}

	if _, err := expandInputs([]string{"[bad"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestPrintTree(t *testing.T) {
	root := &scene.Node{
		Type: scene.TypeScene,
		Name: "main",
		Children: []*scene.Node{
			{Type: scene.TypeCanvas, Name: "Canvas", Children: []*scene.Node{
				{Type: scene.TypeSprite, Name: "hero"},
			}},
			{Type: scene.TypeSkeleton, Name: "boss"},
		},
	}

	var buf bytes.Buffer
	printTree(&buf, root)

	want := "Scene \"main\"\n" +
		"  Node \"Canvas\"\n" +
		"    Sprite \"hero\"\n" +
		"  SpineSkeleton \"boss\"\n"
	if buf.String() != want {
		t.Errorf("printTree() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestLogOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.LogFile = "logs/fireconv.log"
	cfg.Logging.MaxBackups = 7

	opts := logOptions(cfg)
	if opts.Level != "debug" || opts.File != "logs/fireconv.log" {
		t.Errorf("unexpected level/file %+v", opts)
	}
	if opts.MaxSizeMB != 10 || opts.MaxBackups != 7 || opts.MaxAgeDays != 30 || !opts.Compress {
		t.Errorf("rotation settings not carried over: %+v", opts)
	}
	if opts.Console != os.Stderr {
		t.Error("console logging should go to stderr")
	}
}
