package scan

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func twoCells() string {
	return "wlan0     Scan completed :\n" +
		"          Cell 01 - " + cellWPA2 +
		"          Cell 02 - " + cellWEP
}

func TestSplit(t *testing.T) {
	blocks := Split(twoCells())
	if len(blocks) != 2 {
		t.Fatalf("Split() returned %d blocks, want 2", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "Address: 00:1C:10:11:22:33") {
		t.Errorf("first block = %q", blocks[0])
	}
	if !strings.HasPrefix(blocks[1], "Address: 00:24:01:AA:BB:CC") {
		t.Errorf("second block = %q", blocks[1])
	}
	for _, b := range blocks {
		if strings.Contains(b, "Scan completed") {
			t.Errorf("preamble leaked into block %q", b)
		}
	}
}

func TestSplitNoCells(t *testing.T) {
	for _, raw := range []string{"", "wlan0     No scan results\n"} {
		if got := Split(raw); len(got) != 0 {
			t.Errorf("Split(%q) = %q, want none", raw, got)
		}
	}
}

func TestParseAll(t *testing.T) {
	cells, err := ParseAll(twoCells())
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	got := []string{}
	for _, c := range cells {
		got = append(got, c.SSID)
	}
	if diff := cmp.Diff([]string{"SecureNet", "LegacyNet"}, got); diff != "" {
		t.Errorf("ParseAll() order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllMalformed(t *testing.T) {
	raw := twoCells() + "          Cell 03 - " + cellBadFrequency

	_, err := ParseAll(raw)
	var be *BlockError
	if !errors.As(err, &be) {
		t.Fatalf("ParseAll() error = %v, want *BlockError", err)
	}
	if be.Index != 2 {
		t.Errorf("BlockError.Index = %d, want 2", be.Index)
	}
	if !errors.Is(err, ErrMalformedFrequency) {
		t.Errorf("error does not wrap ErrMalformedFrequency: %v", err)
	}
}

func TestParseAllSkipMalformed(t *testing.T) {
	raw := "          Cell 01 - " + cellBadFrequency +
		"          Cell 02 - " + cellWPA

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	cells, err := ParseAll(raw, SkipMalformed(), WithLogger(log))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(cells) != 1 || cells[0].SSID != "OldRouter" {
		t.Fatalf("ParseAll() = %v, want only OldRouter", cells)
	}
	if !strings.Contains(buf.String(), "skipping malformed cell") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestSkipMalformedIf(t *testing.T) {
	raw := "          Cell 01 - " + cellBadFrequency
	if _, err := ParseAll(raw, SkipMalformedIf(false)); err == nil {
		t.Error("SkipMalformedIf(false) should keep the abort policy")
	}
	if _, err := ParseAll(raw, SkipMalformedIf(true)); err != nil {
		t.Errorf("SkipMalformedIf(true) error = %v", err)
	}
}

func TestFilter(t *testing.T) {
	raw := twoCells() + "          Cell 03 - " + cellRelative

	tests := []struct {
		name string
		keep func(Cell) bool
		want []string
	}{
		{"all", func(Cell) bool { return true }, []string{"SecureNet", "LegacyNet", "Relative"}},
		{"encrypted", Encrypted, []string{"SecureNet", "LegacyNet"}},
		{"ssid", SSIDEquals("Relative"), []string{"Relative"}},
		{"min signal", MinSignal(-60), []string{"SecureNet", "Relative"}},
		{"combined", All(Encrypted, MinSignal(-60)), []string{"SecureNet"}},
		{"none", SSIDEquals("missing"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := Filter(raw, tt.keep)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			got := []string{}
			for _, c := range cells {
				got = append(got, c.SSID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPropagatesErrors(t *testing.T) {
	raw := "          Cell 01 - " + cellBadFrequency
	if _, err := Filter(raw, HasSSID); err == nil {
		t.Error("Filter() should return the block error")
	}
}

func TestSortBySignal(t *testing.T) {
	cells := []Cell{
		{SSID: "none"},
		{SSID: "weak", Signal: intPtr(-80)},
		{SSID: "strong", Signal: intPtr(-40)},
		{SSID: "mid", Signal: intPtr(-60)},
	}
	SortBySignal(cells)
	got := []string{}
	for _, c := range cells {
		got = append(got, c.SSID)
	}
	if diff := cmp.Diff([]string{"strong", "mid", "weak", "none"}, got); diff != "" {
		t.Errorf("SortBySignal() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllConcurrent(t *testing.T) {
	raw := twoCells()
	want, err := ParseAll(raw)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ParseAll(raw)
			if err != nil {
				errs <- err.Error()
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestCellString(t *testing.T) {
	if got := (Cell{SSID: "home"}).String(); got != "Cell(ssid=home)" {
		t.Errorf("String() = %q", got)
	}
}
