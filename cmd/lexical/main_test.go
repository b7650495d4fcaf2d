package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const corpusCSV = `cat,kæt,10
bat,bæt,5
cot,kɑt,3
cab,kæb,2
car,kɑr,2
`

func TestRunWritesCSV(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeFixture(t, dir, "corpus.csv", corpusCSV)
	wordsPath := writeFixture(t, dir, "words.csv", "Cat,kæt\n")
	outPath := filepath.Join(dir, "out.csv")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-corpus", corpusPath,
		"-words", wordsPath,
		"-metrics", "orth.length,phon.phonemes,pg.density",
		"-output", outPath,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", data)
	}
	wantHeader := "Item (Orthography),Length,Item (Phonology),No. of Phonemes,Phonographic Neighbourhood Density," +
		"Identity of Phonographic Neighbours (O),Identity of Phonographic Neighbours (P)"
	if lines[0] != wantHeader {
		t.Errorf("header mismatch:\n got %s\nwant %s", lines[0], wantHeader)
	}
	wantRow := `cat,3,kæt,3,3,"[bat, cot, cab]","[bæt, kɑt, kæb]"`
	if lines[1] != wantRow {
		t.Errorf("row mismatch:\n got %s\nwant %s", lines[1], wantRow)
	}
}

func TestRunStoresAndListsRuns(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeFixture(t, dir, "corpus.csv", corpusCSV)
	wordsPath := writeFixture(t, dir, "words.csv", "cat\nbat\n")
	dbPath := filepath.Join(dir, "runs.db")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-corpus", corpusPath, "-words", wordsPath, "-metrics", "orth.density", "-store", dbPath,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	stdout.Reset()
	if err := run(context.Background(), []string{"-store", dbPath, "-list-runs", "5"}, &stdout, &stderr); err != nil {
		t.Fatalf("list runs: %v", err)
	}
	fields := strings.Split(strings.TrimSpace(stdout.String()), "\t")
	if len(fields) != 4 || fields[2] != "ipa-us" || fields[3] != "2" {
		t.Errorf("unexpected listing %q", stdout.String())
	}
}

func TestRunListMetrics(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-list-metrics"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "orth.old20\n") {
		t.Errorf("expected orth.old20 in %q", stdout.String())
	}
}

func TestRunRequiresInputs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-words", "w.csv"}, &stdout, &stderr)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRunNoMetrics(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeFixture(t, dir, "corpus.csv", corpusCSV)
	wordsPath := writeFixture(t, dir, "words.csv", "cat\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-corpus", corpusPath, "-words", wordsPath}, &stdout, &stderr)
	if !errors.Is(err, internalerr.ErrNoMetrics) {
		t.Errorf("expected ErrNoMetrics, got %v", err)
	}
}

func TestRunCustomInventory(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeFixture(t, dir, "corpus.csv", "pa,pa,1\nta,ta,1\npi,pi,1\n")
	wordsPath := writeFixture(t, dir, "words.csv", "pa,pa\n")
	invPath := writeFixture(t, dir, "system.csv", "p,a\nt,i\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-corpus", corpusPath, "-words", wordsPath, "-inventory", invPath, "-metrics", "phon.density",
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], `pa,pa,2,"[ta, pi]","[ta, pi]"`) {
		t.Errorf("unexpected output %q", stdout.String())
	}
}
