package main

import (
	"log"

	"github.com/hugohenrick/vendas-api/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("erro ao aplicar migrações: %v", err)
	}

	log.Println("migrações aplicadas com sucesso")
}
