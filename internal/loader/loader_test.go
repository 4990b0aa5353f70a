package loader

import (
	"context"
	"testing"

	"trivia-game/internal/domain"
)

func assertSampleBank(t *testing.T, categories []*domain.Category) {
	t.Helper()
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	science, history := categories[0], categories[1]
	if science.Name != "Science" || history.Name != "History" {
		t.Fatalf("expected first-seen category order Science,History, got %s,%s", science.Name, history.Name)
	}
	if len(science.Questions) != 2 || len(history.Questions) != 1 {
		t.Fatalf("unexpected question counts: science=%d history=%d", len(science.Questions), len(history.Questions))
	}
	if science.Questions[0].Value != 100 || science.Questions[1].Value != 200 {
		t.Fatalf("expected in-category load order 100,200, got %d,%d", science.Questions[0].Value, science.Questions[1].Value)
	}
	q := science.Questions[0]
	if q.Text != "What is H2O, commonly speaking?" {
		t.Fatalf("expected embedded comma preserved, got %q", q.Text)
	}
	if q.Options["A"] != "Water" || q.Options["D"] != "Air" {
		t.Fatalf("unexpected options %+v", q.Options)
	}
	if q.CorrectAnswer != "A" {
		t.Fatalf("unexpected correct answer %q", q.CorrectAnswer)
	}
	if history.Questions[0].CorrectAnswer != "C" {
		t.Fatalf("unexpected history answer %q", history.Questions[0].CorrectAnswer)
	}
}

func TestCSVLoaderSkipsIncompleteRecords(t *testing.T) {
	categories, err := CSVLoader{}.Load(context.Background(), "testdata/bank.csv")
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	// The malformed rows must be skipped, not abort the load.
	for _, c := range categories {
		if c.Name == "BadValue" || c.Name == "Short" {
			t.Fatalf("expected incomplete rows skipped, found category %q", c.Name)
		}
	}
	assertSampleBank(t, categories)
}

func TestJSONLoader(t *testing.T) {
	categories, err := JSONLoader{}.Load(context.Background(), "testdata/bank.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	assertSampleBank(t, categories)
}

func TestXMLLoader(t *testing.T) {
	categories, err := XMLLoader{}.Load(context.Background(), "testdata/bank.xml")
	if err != nil {
		t.Fatalf("load xml: %v", err)
	}
	assertSampleBank(t, categories)
}

func TestYAMLLoader(t *testing.T) {
	categories, err := YAMLLoader{}.Load(context.Background(), "testdata/bank.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	assertSampleBank(t, categories)
}

func TestFormatsProduceEquivalentBanks(t *testing.T) {
	ctx := context.Background()
	registry := DefaultRegistry()

	sources := []string{"testdata/bank.csv", "testdata/bank.json", "testdata/bank.xml", "testdata/bank.yaml"}
	banks := make([][]*domain.Category, 0, len(sources))
	for _, source := range sources {
		categories, err := registry.Load(ctx, source)
		if err != nil {
			t.Fatalf("load %s: %v", source, err)
		}
		banks = append(banks, categories)
	}

	base := banks[0]
	for i, bank := range banks[1:] {
		if len(bank) != len(base) {
			t.Fatalf("%s: expected %d categories, got %d", sources[i+1], len(base), len(bank))
		}
		for j, c := range bank {
			if c.Name != base[j].Name || len(c.Questions) != len(base[j].Questions) {
				t.Fatalf("%s: category %d differs from csv baseline", sources[i+1], j)
			}
			for k, q := range c.Questions {
				want := base[j].Questions[k]
				if q.Text != want.Text || q.Value != want.Value || q.CorrectAnswer != want.CorrectAnswer {
					t.Fatalf("%s: question %d/%d differs from csv baseline", sources[i+1], j, k)
				}
			}
		}
	}
}

func TestRegistryRejectsUnknownFormat(t *testing.T) {
	registry := DefaultRegistry()
	if _, err := registry.ForSource("bank.tsv"); err != domain.ErrUnsupportedFormat {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
	if _, err := registry.Load(context.Background(), "bank.tsv"); err != domain.ErrUnsupportedFormat {
		t.Fatalf("expected unsupported format error from Load, got %v", err)
	}
}

func TestFormatTag(t *testing.T) {
	cases := map[string]string{
		"bank.csv":             "csv",
		"data/Bank.JSON":       "json",
		"bank.yml":             "yml",
		"pg:general":           "pg",
		"plainname":            "",
		"questions.backup.xml": "xml",
	}
	for source, want := range cases {
		if got := FormatTag(source); got != want {
			t.Fatalf("FormatTag(%q) = %q, want %q", source, got, want)
		}
	}
}
