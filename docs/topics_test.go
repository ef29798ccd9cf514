package docs

import (
	"bufio"
	"os"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures that the documentation index is in sync with the topic files:
// every topic listed in readme.md loads, and every topic file is listed.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	listed := append([]string(nil), topicsInReadme...)
	sort.Strings(listed)
	if diff := cmp.Diff(all, listed); diff != "" {
		t.Errorf("topic files and readme.md list differ (-files +readme):\n%s", diff)
	}
}

func TestGetTopics_Star(t *testing.T) {
	got, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Records", "# Stats", "# Files"} {
		if !strings.Contains(got, title) {
			t.Errorf("GetTopics(\"*\") misses %q", title)
		}
	}
	if strings.Contains(got, "# rcd, a record keeper") {
		t.Errorf("GetTopics(\"*\") should not include the readme")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(%q) want an error", "nope")
	}
}

// TestTopicsHaveATitle parses every topic and checks it starts with a level 1 heading.
func TestTopicsHaveATitle(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(all, Readme) {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader([]byte(content)))
		h, ok := root.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q does not start with a level 1 heading", topic)
		}
	}
}
