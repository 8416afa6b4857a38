package main

import (
	"context"
	"log"

	"github.com/codigo-r/landing-backend/config"
	"github.com/codigo-r/landing-backend/db"
	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/codigo-r/landing-backend/domain/ebook"
	"github.com/google/uuid"
)

func main() {
	config.InitConfig()

	conn, err := config.NewDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	// First access persists the default document.
	contentStore := content.NewStore(conn)
	if _, err := contentStore.Get(ctx); err != nil {
		log.Fatalf("Failed to seed site content: %v", err)
	}
	log.Println("Seeded site content")

	ebookStore := ebook.NewStore(conn)
	ebooks, err := ebookStore.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list ebooks: %v", err)
	}
	if len(ebooks) > 0 {
		log.Println("Ebooks already seeded, skipping")
		return
	}

	demo := &ebook.Ebook{
		ID:            uuid.New().String(),
		Title:         "Codigo R - Setup Completo de Trading",
		Subtitle:      "Do zero ao primeiro lucro consistente",
		Description:   "O guia completo com o setup, as estratégias e a gestão de risco do método Codigo R.",
		Price:         197,
		OriginalPrice: 497,
		Features: []string{
			"Setup completo das ferramentas",
			"Estratégias de entrada e saída",
			"Gestão de risco e de banca",
			"Análise técnica aplicada",
		},
		Bonuses: []string{
			"Planilha de gestão de banca",
			"Grupo fechado de alunos",
		},
		BuyButtons: []ebook.BuyButton{
			{ID: uuid.New().String(), Platform: "hotmart", Label: "Comprar via Hotmart", URL: "https://pay.hotmart.com/codigo-r", Enabled: true},
		},
		Enabled: true,
	}

	if err := ebookStore.Create(ctx, demo); err != nil {
		log.Fatalf("Failed to seed ebook: %v", err)
	}
	log.Printf("Seeded ebook: %s", demo.Title)
}
