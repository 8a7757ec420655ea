package mockgen

import (
	"os"
	"path/filepath"
	"strings"
)

// Corpus file names expected under the data directory.
const (
	TitlesFile     = "titles.txt"
	SentencesFile  = "sentences.txt"
	CategoriesFile = "categories.txt"
	CommentsFile   = "comments.txt"
)

// ReadContent reads a corpus file and returns its non-empty lines.
func ReadContent(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// LoadCorpus reads all corpus files from dir.
func LoadCorpus(dir string) (Corpus, error) {
	var corpus Corpus
	var err error

	if corpus.Titles, err = ReadContent(filepath.Join(dir, TitlesFile)); err != nil {
		return corpus, err
	}
	if corpus.Sentences, err = ReadContent(filepath.Join(dir, SentencesFile)); err != nil {
		return corpus, err
	}
	if corpus.Categories, err = ReadContent(filepath.Join(dir, CategoriesFile)); err != nil {
		return corpus, err
	}
	if corpus.CommentText, err = ReadContent(filepath.Join(dir, CommentsFile)); err != nil {
		return corpus, err
	}
	return corpus, nil
}
