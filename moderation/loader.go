package moderation

import (
	"bufio"
	"bytes"
	"chat-live/errors"
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadCensored reads the word lists embedded in the binary.
func LoadCensored() (*CensoredData, error) {
	return LoadAll(censoredFolder, "censored")
}

// LoadAll reads every .txt file of dir as a dictionary named after the file ("fr.txt" -> "fr")
// and merges their words, deduplicated and sorted.
func LoadAll(fsys fs.FS, dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// Scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				uniqueWords[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &CensoredData{Words: words, Languages: languages}, nil
}
