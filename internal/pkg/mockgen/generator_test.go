package mockgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() Corpus {
	return Corpus{
		Titles: []string{"First title", "Second title", "Third title"},
		Sentences: []string{
			"One sentence about everything.",
			"Another sentence about nothing.",
			"The third sentence is the longest of them all.",
			"A fourth sentence for good measure.",
			"The fifth one closes the corpus.",
		},
		Categories:  []string{"Music", "Cooking", "Travel", "Cinema"},
		CommentText: []string{"Fully agree.", "Strongly disagree.", "Please elaborate.", "Best article so far."},
	}
}

func TestGenerateProducesExactCount(t *testing.T) {
	articles := Generate(10, testCorpus())
	assert.Len(t, articles, 10)
}

func TestGeneratedArticlesRespectBounds(t *testing.T) {
	corpus := testCorpus()
	articles := Generate(25, corpus)

	seenIDs := make(map[string]bool)
	for _, article := range articles {
		require.NotEmpty(t, article.ID)
		assert.False(t, seenIDs[article.ID], "article ids must be unique")
		seenIDs[article.ID] = true

		assert.Contains(t, corpus.Titles, article.Title)
		assert.Contains(t, pictures, article.Picture)

		categoryCount := len(article.Categories)
		assert.GreaterOrEqual(t, categoryCount, CategoriesMin)
		assert.LessOrEqual(t, categoryCount, CategoriesMax)

		seenCategories := make(map[string]bool)
		for _, category := range article.Categories {
			assert.Contains(t, corpus.Categories, category)
			assert.False(t, seenCategories[category], "categories must not repeat within an article")
			seenCategories[category] = true
		}

		commentCount := len(article.Comments)
		assert.GreaterOrEqual(t, commentCount, CommentsMin)
		assert.LessOrEqual(t, commentCount, CommentsMax)

		announceSentences := strings.Count(article.Announce, ".")
		assert.GreaterOrEqual(t, announceSentences, AnnounceSentencesMin)
		assert.LessOrEqual(t, announceSentences, AnnounceSentencesMax)

		assert.NotEmpty(t, article.FullText)
	}
}

func TestGeneratedCommentsRespectBounds(t *testing.T) {
	corpus := testCorpus()
	comments := GenerateComments(8, corpus.CommentText)

	require.Len(t, comments, 8)
	seenIDs := make(map[string]bool)
	for _, comment := range comments {
		require.NotEmpty(t, comment.ID)
		assert.False(t, seenIDs[comment.ID], "comment ids must be unique")
		seenIDs[comment.ID] = true

		sentences := strings.Count(comment.Text, ".")
		assert.GreaterOrEqual(t, sentences, CommentSentencesMin)
		assert.LessOrEqual(t, sentences, CommentSentencesMax)
	}
}

func TestGenerateDoesNotMutateCorpus(t *testing.T) {
	corpus := testCorpus()
	sentencesBefore := append([]string(nil), corpus.Sentences...)
	categoriesBefore := append([]string(nil), corpus.Categories...)

	Generate(10, corpus)

	assert.Equal(t, sentencesBefore, corpus.Sentences)
	assert.Equal(t, categoriesBefore, corpus.Categories)
}
