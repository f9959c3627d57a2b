package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(dir, "page.chtl")
	if err := os.WriteFile(src, []byte("div { }"), 0644); err != nil {
		t.Fatal(err)
	}
	rpt.Store("source", src)
	rpt.StoreText("page/fragments.txt", "0 structural")
	rpt.StoreText("page/fragments.txt", "1 script")
	if err := rpt.StoreCopy("copy", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	temps := rpt.temps

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	for _, d := range temps {
		if _, err := os.Stat(d); !os.IsNotExist(err) {
			t.Errorf("temporary copy %s was not removed", d)
		}
	}

	files := readArchive(t, rpt.Name())
	if files["source"] != "div { }" || files["copy"] != "div { }" {
		t.Errorf("archive = %v", files)
	}
	if files["page/fragments.txt"] != "0 structural" {
		t.Errorf("fragments = %q", files["page/fragments.txt"])
	}
	var versioned bool
	for name, body := range files {
		if strings.HasPrefix(name, "page/fragments.txt-") && body == "1 script" {
			versioned = true
		}
	}
	if !versioned {
		t.Error("second StoreText() with the same name was lost")
	}
	if !strings.Contains(files["MANIFEST"], "source") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "one")
	r.Store("a", "one")
	defer func() {
		if recover() == nil {
			t.Error("Store() with different path should panic")
		}
	}()
	r.Store("a", "two")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreText("a", "b")
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy() on nil report = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report = %v", err)
	}
	if r.Name() != "" {
		t.Error("Name() on nil report should be empty")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
