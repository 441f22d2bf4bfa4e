package moderation

import (
	"chat-live/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadCensored_Embedded(t *testing.T) {
	req := require.New(t)

	data, err := LoadCensored()

	req.NoError(err)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
	req.Contains(data.Words, "idiot")
	req.Contains(data.Words, "crétin")
}

func TestLoadAll_Deduplicates_And_Trims(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt":     {Data: []byte("snake\r\n  badger \n\nsnake\n")},
		"words/fr.txt":     {Data: []byte("badger\n")},
		"words/README.md":  {Data: []byte("not a dictionary")},
		"words/old/de.txt": {Data: []byte("ignored")},
	}

	data, err := LoadAll(fsys, "words")

	req.NoError(err)
	req.Equal([]string{"badger", "snake"}, data.Words)
	req.Equal([]string{"en", "fr"}, data.Languages)
}

func TestLoadAll_Empty(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"words/en.txt": {Data: []byte("\n\n")}}

	_, err := LoadAll(fsys, "words")

	req.ErrorIs(err, errors.ErrEmptyWords)
}
