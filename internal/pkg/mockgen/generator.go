package mockgen

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bounds for the synthetic content. Counts drawn from these ranges are
// the verifiable contract of the generator; the content itself is
// random by design.
const (
	AnnounceSentencesMin = 1
	AnnounceSentencesMax = 5
	CommentSentencesMin  = 1
	CommentSentencesMax  = 3
	CommentsMin          = 2
	CommentsMax          = 6
	CategoriesMin        = 1
	CategoriesMax        = 3
	MaxDaysGap           = 90
	MaxHoursGap          = 23
)

var pictures = []string{"forest@1x.jpg", "sea@1x.jpg", "skyscraper@1x.jpg"}

// Corpus holds the text sources the generator samples from.
type Corpus struct {
	Titles      []string
	Sentences   []string
	Categories  []string
	CommentText []string
}

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Announce   string    `json:"announce"`
	FullText   string    `json:"fullText"`
	Picture    string    `json:"picture"`
	Categories []string  `json:"categories"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Generate produces count synthetic articles from the corpus. Each
// article carries a unique id, a backdated creation time, between
// CategoriesMin and CategoriesMax distinct categories and between
// CommentsMin and CommentsMax comments.
func Generate(count int, corpus Corpus) []Article {
	articles := make([]Article, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, Article{
			ID:         uuid.NewString(),
			Title:      corpus.Titles[RandomInt(0, len(corpus.Titles)-1)],
			Announce:   sampleText(corpus.Sentences, AnnounceSentencesMin, AnnounceSentencesMax),
			FullText:   sampleText(corpus.Sentences, AnnounceSentencesMin, len(corpus.Sentences)),
			Picture:    pictures[RandomInt(0, len(pictures)-1)],
			Categories: sample(corpus.Categories, RandomInt(CategoriesMin, CategoriesMax)),
			Comments:   GenerateComments(RandomInt(CommentsMin, CommentsMax), corpus.CommentText),
			CreatedAt:  RandomPastDate(MaxDaysGap, MaxHoursGap),
		})
	}
	return articles
}

// GenerateComments produces count synthetic comments from the sentence
// corpus, each with its own id and backdated timestamp.
func GenerateComments(count int, sentences []string) []Comment {
	comments := make([]Comment, 0, count)
	for i := 0; i < count; i++ {
		comments = append(comments, Comment{
			ID:        uuid.NewString(),
			Text:      sampleText(sentences, CommentSentencesMin, CommentSentencesMax),
			CreatedAt: RandomPastDate(MaxDaysGap, MaxHoursGap),
		})
	}
	return comments
}

// sample returns a random-size shuffled subset without duplicates. The
// source slice is never mutated.
func sample(source []string, size int) []string {
	if size > len(source) {
		size = len(source)
	}
	shuffled := Shuffle(append([]string(nil), source...))
	return shuffled[:size]
}

func sampleText(sentences []string, min, max int) string {
	return strings.Join(sample(sentences, RandomInt(min, max)), " ")
}
