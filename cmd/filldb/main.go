package main

import (
	"log"
	"os"
	"strconv"

	"github.com/typoteka/typoteka/app/models"
	"github.com/typoteka/typoteka/internal/pkg/database"
	"github.com/typoteka/typoteka/internal/pkg/env"
	"github.com/typoteka/typoteka/internal/pkg/mockgen"
)

const defaultArticleCount = 5

// filldb generates synthetic articles, comments and users from the text
// corpora under data/ and appends them to the database. Re-running it
// adds a new batch; it never replaces prior rows.
func main() {
	env.SetupEnvFile()

	count := defaultArticleCount
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil || parsed < 1 {
			log.Fatalf("Invalid article count: %s", os.Args[1])
		}
		count = parsed
	}

	corpus, err := mockgen.LoadCorpus(env.GetEnv("DATA_DIR", "data"))
	if err != nil {
		log.Fatalf("Failed to load corpora: %v", err)
	}

	log.Println("Trying to connect to database...")
	database.SetupDatabase()
	db := database.DB
	log.Println("Connection to database established")

	// Users and categories are keyed by unique columns, so re-runs reuse
	// the existing rows and only the article batch grows.
	users := seedUsers()
	for i := range users {
		if err := db.Where(models.User{Email: users[i].Email}).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Failed to insert user %s: %v", users[i].Email, err)
		}
	}

	categories := make([]models.Category, 0, len(corpus.Categories))
	for _, name := range corpus.Categories {
		category := models.Category{Name: name}
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("Failed to insert category %s: %v", name, err)
		}
		categories = append(categories, category)
	}
	categoryByName := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		categoryByName[category.Name] = category
	}

	for _, mock := range mockgen.Generate(count, corpus) {
		article := models.Article{
			Title:     mock.Title,
			Announce:  mock.Announce,
			FullText:  mock.FullText,
			Picture:   mock.Picture,
			CreatedAt: mock.CreatedAt,
		}
		for _, name := range mock.Categories {
			article.Categories = append(article.Categories, categoryByName[name])
		}
		for _, comment := range mock.Comments {
			article.Comments = append(article.Comments, models.Comment{
				Text:      comment.Text,
				UserID:    users[mockgen.RandomInt(0, len(users)-1)].ID,
				CreatedAt: comment.CreatedAt,
			})
		}
		if err := db.Create(&article).Error; err != nil {
			log.Fatalf("Failed to insert article: %v", err)
		}
	}

	log.Printf("Inserted %d articles, %d categories, %d users", count, len(categories), len(users))
}

func seedUsers() []models.User {
	seed := []struct {
		firstName, lastName, email, password string
		avatar                               string
	}{
		{"Ivan", "Ivanov", "ivanov@example.com", "ivanov", "avatar-1.png"},
		{"Petr", "Petrov", "petrov@example.com", "petrov", "avatar-2.png"},
		{"Sergey", "Sergeev", "sergeev@example.com", "sergeev", "avatar-3.png"},
		{"Alexey", "Alekseev", "alekseev@example.com", "alekseev", "avatar-4.png"},
		{"Mikhail", "Mikhailov", "mikhailov@example.com", "mikhailov", "avatar-5.png"},
	}

	users := make([]models.User, 0, len(seed))
	for _, s := range seed {
		hash, err := models.HashPassword(s.password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		users = append(users, models.User{
			FirstName:      s.firstName,
			LastName:       s.lastName,
			Email:          s.email,
			PasswordHash:   hash,
			AvatarFullsize: s.avatar,
			AvatarSmall:    "small-" + s.avatar,
		})
	}
	return users
}
